package workcycle

import "context"

type WorkCycleService interface {
	Create(ctx context.Context, req CreateWorkCycleRequest) (WorkCycleResponse, error)
	Get(ctx context.Context, id string) (WorkCycleResponse, error)
	List(ctx context.Context, filter WorkCycleFilter) ([]WorkCycleResponse, int64, error)
	Update(ctx context.Context, req UpdateWorkCycleRequest) (WorkCycleResponse, error)
	Delete(ctx context.Context, id string) error
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
}
