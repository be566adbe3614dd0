package timeentry

import "time"

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// TimeEntry is the raw punch record: one row per employee per working day.
// Calculation holds the JSON-encoded decomposition result once the
// engine has run for the entry; nil means not yet calculated (or the
// fail-soft calculation path failed and will be retried by cron).
type TimeEntry struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     *time.Time
	ClockOut    *time.Time
	TotalHours  *float64
	Status      Status
	Calculation *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}
