package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/specialhour"
	"github.com/gta-labs/gta-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type specialHourRepositoryImpl struct {
	db *database.DB
}

func NewSpecialHourRepository(db *database.DB) specialhour.Repository {
	return &specialHourRepositoryImpl{db: db}
}

// Create implements specialhour.Repository.
func (s *specialHourRepositoryImpl) Create(ctx context.Context, record specialhour.SpecialHour) (specialhour.SpecialHour, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO special_hours (employee_id, date, hours, hour_type, reason, status)
		VALUES ($1, $2::date, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Hours,
		record.HourType,
		record.Reason,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return specialhour.SpecialHour{}, specialhour.ErrAlreadyExists
		}
		return specialhour.SpecialHour{}, fmt.Errorf("failed to create special hour record: %w", err)
	}

	return record, nil
}

// GetByID implements specialhour.Repository.
func (s *specialHourRepositoryImpl) GetByID(ctx context.Context, id string) (specialhour.SpecialHour, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT sh.id, sh.employee_id, sh.date, sh.hours, sh.hour_type, sh.reason, sh.status,
			   sh.approved_by, sh.approved_at, sh.rejection_reason,
			   sh.created_at, sh.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM special_hours sh
		LEFT JOIN employees e ON e.id = sh.employee_id
		WHERE sh.id = $1
	`

	var rec specialhour.SpecialHour
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.HourType, &rec.Reason, &rec.Status,
		&rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return specialhour.SpecialHour{}, specialhour.ErrSpecialHourNotFound
		}
		return specialhour.SpecialHour{}, fmt.Errorf("failed to get special hour by ID: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDay implements specialhour.Repository.
func (s *specialHourRepositoryImpl) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*specialhour.SpecialHour, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, date, hours, hour_type, reason, status,
			   approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM special_hours
		WHERE employee_id = $1 AND date = $2::date
		LIMIT 1
	`

	var rec specialhour.SpecialHour
	err := q.QueryRow(ctx, query, employeeID, day).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.HourType, &rec.Reason, &rec.Status,
		&rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this day yet
		}
		return nil, fmt.Errorf("failed to get special hour by employee and day: %w", err)
	}

	return &rec, nil
}

// List implements specialhour.Repository.
func (s *specialHourRepositoryImpl) List(ctx context.Context, filter specialhour.Filter) ([]specialhour.SpecialHour, int64, error) {
	q := GetQuerier(ctx, s.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND sh.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND sh.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.HourType != nil {
		where += fmt.Sprintf(" AND sh.hour_type = $%d", argPos)
		args = append(args, *filter.HourType)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND sh.date >= $%d::date", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND sh.date <= $%d::date", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM special_hours sh " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count special hour records: %w", err)
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
		SELECT sh.id, sh.employee_id, sh.date, sh.hours, sh.hour_type, sh.reason, sh.status,
			   sh.approved_by, sh.approved_at, sh.rejection_reason,
			   sh.created_at, sh.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM special_hours sh
		LEFT JOIN employees e ON e.id = sh.employee_id
		%s
		ORDER BY sh.date DESC, sh.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list special hour records: %w", err)
	}
	defer rows.Close()

	var records []specialhour.SpecialHour
	for rows.Next() {
		var rec specialhour.SpecialHour
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.HourType, &rec.Reason, &rec.Status,
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

// UpdateStatus implements specialhour.Repository.
func (s *specialHourRepositoryImpl) UpdateStatus(ctx context.Context, id string, status specialhour.Status, approverID string, rejectionReason *string) (specialhour.SpecialHour, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE special_hours
		SET status = $1, approved_by = $2, approved_at = NOW(), rejection_reason = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING id, employee_id, date, hours, hour_type, reason, status,
				  approved_by, approved_at, rejection_reason, created_at, updated_at
	`

	var rec specialhour.SpecialHour
	err := q.QueryRow(ctx, query, status, approverID, rejectionReason, id, specialhour.StatusPending).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.HourType, &rec.Reason, &rec.Status,
		&rec.ApprovedBy, &rec.ApprovedAt, &rec.RejectionReason, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := s.GetByID(ctx, id); getErr != nil {
				return specialhour.SpecialHour{}, getErr
			}
			return specialhour.SpecialHour{}, specialhour.ErrAlreadyProcessed
		}
		return specialhour.SpecialHour{}, fmt.Errorf("failed to update special hour status: %w", err)
	}

	return rec, nil
}
