package overtime

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new record. Returns ErrAlreadyExists when a record
	// for the same employee and day is already present.
	Create(ctx context.Context, record Overtime) (Overtime, error)

	GetByID(ctx context.Context, id string) (Overtime, error)

	// GetByEmployeeAndDay looks up the record for the calendar day of the
	// given date, using day-inclusive bounds. Returns nil when absent.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*Overtime, error)

	List(ctx context.Context, filter Filter) ([]Overtime, int64, error)

	UpdateStatus(ctx context.Context, id string, status Status, approverID string, rejectionReason *string) (Overtime, error)
}
