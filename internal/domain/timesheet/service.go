package timesheet

import (
	"context"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
)

// ScheduleResolver resolves an employee's effective schedule with its
// slots. A nil schedule (without error) means the employee has no
// resolvable working pattern and decomposition falls back to all-normal.
type ScheduleResolver interface {
	GetEffectiveSchedule(ctx context.Context, employeeID string) (*workcycle.Schedule, error)
}

// HolidayCalendar answers whether a date is a recognized public holiday.
// The date's own calendar day is used as-is, without timezone
// normalization.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// Service is the work-time decomposition engine.
type Service interface {
	// CalculateHoursWorked decomposes the worked interval against the
	// employee's schedule into normal/overtime/special/break buckets.
	// Pure apart from the schedule read.
	CalculateHoursWorked(ctx context.Context, entry WorkedInterval) (CalculatedHours, error)

	// AutoCreateOvertimeAndSpecialHours materializes at most one pending
	// overtime and one pending special-hours record per employee-day when
	// the 0.25h thresholds are crossed. Idempotent per day; storage
	// failures are logged and never propagated.
	AutoCreateOvertimeAndSpecialHours(ctx context.Context, entry WorkedInterval, hours CalculatedHours)
}
