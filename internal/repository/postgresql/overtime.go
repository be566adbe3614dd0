package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/overtime"
	"github.com/gta-labs/gta-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepositoryImpl{db: db}
}

// Create implements overtime.Repository.
func (o *overtimeRepositoryImpl) Create(ctx context.Context, record overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO overtimes (employee_id, date, hours, reason, status)
		VALUES ($1, $2::date, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Hours,
		record.Reason,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return overtime.Overtime{}, overtime.ErrAlreadyExists
		}
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return record, nil
}

// GetByID implements overtime.Repository.
func (o *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT o.id, o.employee_id, o.date, o.hours, o.reason, o.status,
			   o.approved_by, o.approved_at, o.rejection_reason,
			   o.created_at, o.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM overtimes o
		LEFT JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`

	var rec overtime.Overtime
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Reason, &rec.Status,
		&rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Overtime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.Overtime{}, fmt.Errorf("failed to get overtime by ID: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDay implements overtime.Repository.
func (o *overtimeRepositoryImpl) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, employee_id, date, hours, reason, status,
			   approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM overtimes
		WHERE employee_id = $1 AND date = $2::date
		LIMIT 1
	`

	var rec overtime.Overtime
	err := q.QueryRow(ctx, query, employeeID, day).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Reason, &rec.Status,
		&rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this day yet
		}
		return nil, fmt.Errorf("failed to get overtime by employee and day: %w", err)
	}

	return &rec, nil
}

// List implements overtime.Repository.
func (o *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.Filter) ([]overtime.Overtime, int64, error) {
	q := GetQuerier(ctx, o.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND o.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND o.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND o.date >= $%d::date", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND o.date <= $%d::date", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM overtimes o " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime records: %w", err)
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
		SELECT o.id, o.employee_id, o.date, o.hours, o.reason, o.status,
			   o.approved_by, o.approved_at, o.rejection_reason,
			   o.created_at, o.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM overtimes o
		LEFT JOIN employees e ON e.id = o.employee_id
		%s
		ORDER BY o.date DESC, o.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.Overtime
	for rows.Next() {
		var rec overtime.Overtime
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Reason, &rec.Status,
			&rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// UpdateStatus implements overtime.Repository. Only pending records can be
// resolved; resolving twice is an error.
func (o *overtimeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status overtime.Status, approverID string, rejectionReason *string) (overtime.Overtime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE overtimes
		SET status = $1, approved_by = $2, approved_at = NOW(), rejection_reason = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING id, employee_id, date, hours, reason, status,
				  approved_by, approved_at, rejection_reason, created_at, updated_at
	`

	var rec overtime.Overtime
	err := q.QueryRow(ctx, query, status, approverID, rejectionReason, id, overtime.StatusPending).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Reason, &rec.Status,
		&rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish "gone" from "already resolved".
			if _, getErr := o.GetByID(ctx, id); getErr != nil {
				return overtime.Overtime{}, getErr
			}
			return overtime.Overtime{}, overtime.ErrAlreadyProcessed
		}
		return overtime.Overtime{}, fmt.Errorf("failed to update overtime status: %w", err)
	}

	return rec, nil
}
