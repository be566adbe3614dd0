package specialhour

import (
	"time"

	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

type Filter struct {
	EmployeeID *string
	Status     *Status
	HourType   *HourType
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type ApproveRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"-"`
}

type RejectRequest struct {
	ID         string `json:"-"`
	ApproverID string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SpecialHourResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Date            string  `json:"date"`
	Hours           float64 `json:"hours"`
	HourType        string  `json:"hour_type"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}
