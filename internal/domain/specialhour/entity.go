package specialhour

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// HourType labels why the hours are premium. When several premium
// categories coexist in one day the materializer picks the first non-zero
// one in priority order: weekend, holiday, night shift, on-call.
type HourType string

const (
	HourTypeWeekend    HourType = "WEEKEND"
	HourTypeHoliday    HourType = "HOLIDAY"
	HourTypeNightShift HourType = "NIGHT_SHIFT"
	HourTypeOnCall     HourType = "ON_CALL"
)

// SpecialHour is a derived record: at most one row per employee per
// working day.
type SpecialHour struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	Hours           float64
	HourType        HourType
	Reason          string
	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}
