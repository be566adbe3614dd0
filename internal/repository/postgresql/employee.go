package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gta-labs/gta-backend-go/internal/domain/employee"
	"github.com/gta-labs/gta-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			employee_number, first_name, last_name, email, phone, gender,
			hire_date, contract_type, status, organizational_unit_id, work_cycle_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10, $11
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeNumber,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.Gender,
		emp.HireDate,
		emp.ContractType,
		emp.Status,
		emp.OrganizationalUnitID,
		emp.WorkCycleID,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeNumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_number, e.first_name, e.last_name, e.email, e.phone, e.gender,
			   e.hire_date, e.contract_type, e.status, e.organizational_unit_id, e.work_cycle_id,
			   e.created_at, e.updated_at, e.deleted_at,
			   wc.name AS work_cycle_name
		FROM employees e
		LEFT JOIN work_cycles wc ON wc.id = e.work_cycle_id AND wc.deleted_at IS NULL
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.Gender,
		&emp.HireDate, &emp.ContractType, &emp.Status, &emp.OrganizationalUnitID, &emp.WorkCycleID,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		&emp.WorkCycleName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	where := "WHERE e.deleted_at IS NULL"
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d OR e.employee_number ILIKE $%d)",
			argPos, argPos, argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND e.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.OrganizationalUnitID != nil {
		where += fmt.Sprintf(" AND e.organizational_unit_id = $%d", argPos)
		args = append(args, *filter.OrganizationalUnitID)
		argPos++
	}
	if filter.WorkCycleID != nil {
		where += fmt.Sprintf(" AND e.work_cycle_id = $%d", argPos)
		args = append(args, *filter.WorkCycleID)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.employee_number, e.first_name, e.last_name, e.email, e.phone, e.gender,
			   e.hire_date, e.contract_type, e.status, e.organizational_unit_id, e.work_cycle_id,
			   e.created_at, e.updated_at, e.deleted_at,
			   wc.name AS work_cycle_name
		FROM employees e
		LEFT JOIN work_cycles wc ON wc.id = e.work_cycle_id AND wc.deleted_at IS NULL
		%s
		ORDER BY e.employee_number ASC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.Gender,
			&emp.HireDate, &emp.ContractType, &emp.Status, &emp.OrganizationalUnitID, &emp.WorkCycleID,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
			&emp.WorkCycleName,
		)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository. Unset fields keep their
// stored value.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET first_name = COALESCE($1, first_name),
			last_name = COALESCE($2, last_name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			status = COALESCE($5, status),
			organizational_unit_id = COALESCE($6, organizational_unit_id),
			work_cycle_id = COALESCE($7, work_cycle_id),
			updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.Status,
		req.OrganizationalUnitID,
		req.WorkCycleID,
		req.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e.GetByID(ctx, updatedID)
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
