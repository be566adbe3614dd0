package timeentry

import (
	"time"

	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

// ClockInRequest records a punch-in. Time is an optional RFC3339
// timestamp; when empty the server clock is used.
type ClockInRequest struct {
	EmployeeID string `json:"-"`
	Time       string `json:"time,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Time != "" {
		if _, ok := validator.IsValidDateTime(r.Time); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "time must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"-"`
	Time       string `json:"time,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Time != "" {
		if _, ok := validator.IsValidDateTime(r.Time); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "time must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Status     *Status
	Page       int
	Limit      int
}

type EntryResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	ClockIn      *string  `json:"clock_in,omitempty"`
	ClockOut     *string  `json:"clock_out,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	Status       string   `json:"status"`
	Calculation  *string  `json:"calculation,omitempty"`
}

// ValidationIssue flags an entry a payroll run cannot consume yet.
type ValidationIssue struct {
	EntryID    string   `json:"entry_id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	Problems   []string `json:"problems"`
}
