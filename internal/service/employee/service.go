package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/employee"
	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
)

type EmployeeServiceImpl struct {
	employees  employee.EmployeeRepository
	workCycles workcycle.WorkCycleRepository
}

func NewEmployeeService(employees employee.EmployeeRepository, workCycles workcycle.WorkCycleRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employees:  employees,
		workCycles: workCycles,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// An assigned cycle must exist before the employee references it.
	if req.WorkCycleID != nil {
		if _, err := s.workCycles.GetByID(ctx, *req.WorkCycleID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid hire date: %w", err)
	}

	created, err := s.employees.Create(ctx, employee.Employee{
		EmployeeNumber:       req.EmployeeNumber,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		Gender:               req.Gender,
		HireDate:             hireDate,
		ContractType:         employee.ContractType(req.ContractType),
		Status:               employee.StatusActive,
		OrganizationalUnitID: req.OrganizationalUnitID,
		WorkCycleID:          req.WorkCycleID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, total, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.WorkCycleID != nil {
		if _, err := s.workCycles.GetByID(ctx, *req.WorkCycleID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	updated, err := s.employees.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employees.SoftDelete(ctx, id)
}
