package overtime

import "context"

type Service interface {
	Get(ctx context.Context, id string) (OvertimeResponse, error)
	List(ctx context.Context, filter Filter) ([]OvertimeResponse, int64, error)
	Approve(ctx context.Context, req ApproveRequest) (OvertimeResponse, error)
	Reject(ctx context.Context, req RejectRequest) (OvertimeResponse, error)
}
