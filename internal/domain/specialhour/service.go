package specialhour

import "context"

type Service interface {
	Get(ctx context.Context, id string) (SpecialHourResponse, error)
	List(ctx context.Context, filter Filter) ([]SpecialHourResponse, int64, error)
	Approve(ctx context.Context, req ApproveRequest) (SpecialHourResponse, error)
	Reject(ctx context.Context, req RejectRequest) (SpecialHourResponse, error)
}
