package employee

import (
	"time"

	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNumber       string  `json:"employee_number"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	Email                string  `json:"email"`
	Phone                *string `json:"phone,omitempty"`
	Gender               *string `json:"gender,omitempty"`
	HireDate             string  `json:"hire_date"`
	ContractType         string  `json:"contract_type"`
	OrganizationalUnitID *string `json:"organizational_unit_id,omitempty"`
	WorkCycleID          *string `json:"work_cycle_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeNumber(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee_number must be an uppercase prefix followed by digits, e.g. EMP001",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.ContractType, ContractTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type must be one of FULL_TIME, PART_TIME, TEMPORARY",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                   string  `json:"-"`
	FirstName            *string `json:"first_name,omitempty"`
	LastName             *string `json:"last_name,omitempty"`
	Email                *string `json:"email,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	Status               *string `json:"status,omitempty"`
	OrganizationalUnitID *string `json:"organizational_unit_id,omitempty"`
	WorkCycleID          *string `json:"work_cycle_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid employee status",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	Search               string
	Status               *Status
	OrganizationalUnitID *string
	WorkCycleID          *string
	Page                 int
	Limit                int
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	HireDate       string  `json:"hire_date"`
	ContractType   string  `json:"contract_type"`
	Status         string  `json:"status"`
	WorkCycleID    *string `json:"work_cycle_id,omitempty"`
	WorkCycleName  *string `json:"work_cycle_name,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		HireDate:       e.HireDate.Format(time.DateOnly),
		ContractType:   string(e.ContractType),
		Status:         string(e.Status),
		WorkCycleID:    e.WorkCycleID,
		WorkCycleName:  e.WorkCycleName,
	}
}
