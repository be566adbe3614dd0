package timeentry

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new entry. Returns ErrAlreadyClockedIn when an
	// entry for the same employee and day already exists.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	GetByID(ctx context.Context, id string) (TimeEntry, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeEntry, error)
	Update(ctx context.Context, entry TimeEntry) error
	List(ctx context.Context, filter Filter) ([]TimeEntry, int64, error)

	// ListOpenBefore returns in-progress entries whose working day is
	// before the cutoff. Used to auto-close stale sessions.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]TimeEntry, error)

	// ListCompletedWithoutCalculation returns completed entries where the
	// fail-soft calculation never landed, so cron can retry it.
	ListCompletedWithoutCalculation(ctx context.Context, limit int) ([]TimeEntry, error)
}
