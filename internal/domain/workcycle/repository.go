package workcycle

import "context"

type WorkCycleRepository interface {
	Create(ctx context.Context, cycle WorkCycle) (WorkCycle, error)
	GetByID(ctx context.Context, id string) (WorkCycle, error)
	List(ctx context.Context, filter WorkCycleFilter) ([]WorkCycle, int64, error)
	Update(ctx context.Context, req UpdateWorkCycleRequest) (WorkCycle, error)
	SoftDelete(ctx context.Context, id string) error

	// UpsertSchedule replaces the cycle's schedule and its slots in one
	// transaction. Slot order in the request becomes the stored position.
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (Schedule, error)

	// GetEffectiveSchedule resolves an employee's schedule through the
	// assigned work cycle, slots ordered by position. Returns nil with no
	// error when the employee has no cycle or the cycle has no schedule.
	GetEffectiveSchedule(ctx context.Context, employeeID string) (*Schedule, error)
}
