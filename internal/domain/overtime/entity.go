package overtime

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Overtime is a derived record: at most one row per employee per working
// day, created by the materializer and resolved by the approval workflow.
type Overtime struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	Hours           float64
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
