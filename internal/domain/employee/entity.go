package employee

import "time"

type ContractType string

const (
	ContractFullTime ContractType = "FULL_TIME"
	ContractPartTime ContractType = "PART_TIME"
	ContractTemp     ContractType = "TEMPORARY"
)

var ContractTypeValues = []string{
	string(ContractFullTime),
	string(ContractPartTime),
	string(ContractTemp),
}

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusOnLeave    Status = "ON_LEAVE"
	StatusTerminated Status = "TERMINATED"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusOnLeave),
	string(StatusTerminated),
}

type Employee struct {
	ID                   string
	EmployeeNumber       string
	FirstName            string
	LastName             string
	Email                string
	Phone                *string
	Gender               *string
	HireDate             time.Time
	ContractType         ContractType
	Status               Status
	OrganizationalUnitID *string
	WorkCycleID          *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time

	// DTO
	WorkCycleName *string
}

// FullName returns the display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
