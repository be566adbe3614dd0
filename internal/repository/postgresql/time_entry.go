package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/timeentry"
	"github.com/gta-labs/gta-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.Repository {
	return &timeEntryRepositoryImpl{db: db}
}

// Create implements timeentry.Repository.
func (t *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_entries (employee_id, date, clock_in, clock_out, total_hours, status, calculation)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.ClockIn,
		entry.ClockOut,
		entry.TotalHours,
		entry.Status,
		entry.Calculation,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timeentry.TimeEntry{}, timeentry.ErrAlreadyClockedIn
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.Repository.
func (t *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT te.id, te.employee_id, te.date, te.clock_in, te.clock_out,
			   te.total_hours, te.status, te.calculation, te.created_at, te.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM time_entries te
		LEFT JOIN employees e ON e.id = te.employee_id
		WHERE te.id = $1
	`

	var entry timeentry.TimeEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
		&entry.TotalHours, &entry.Status, &entry.Calculation, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry by ID: %w", err)
	}

	return entry, nil
}

// GetByEmployeeAndDate implements timeentry.Repository.
func (t *timeEntryRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out,
			   total_hours, status, calculation, created_at, updated_at
		FROM time_entries
		WHERE employee_id = $1 AND date = $2::date
		LIMIT 1
	`

	var entry timeentry.TimeEntry
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
		&entry.TotalHours, &entry.Status, &entry.Calculation, &entry.CreatedAt, &entry.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no punch for this day yet
		}
		return nil, fmt.Errorf("failed to get time entry by employee and date: %w", err)
	}

	return &entry, nil
}

// Update implements timeentry.Repository.
func (t *timeEntryRepositoryImpl) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE time_entries
		SET clock_in = $1, clock_out = $2, total_hours = $3, status = $4, calculation = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		entry.ClockIn,
		entry.ClockOut,
		entry.TotalHours,
		entry.Status,
		entry.Calculation,
		entry.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update time entry: %w", err)
	}

	return nil
}

// List implements timeentry.Repository.
func (t *timeEntryRepositoryImpl) List(ctx context.Context, filter timeentry.Filter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, t.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND te.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND te.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND te.date >= $%d::date", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND te.date <= $%d::date", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM time_entries te " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
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
		SELECT te.id, te.employee_id, te.date, te.clock_in, te.clock_out,
			   te.total_hours, te.status, te.calculation, te.created_at, te.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM time_entries te
		LEFT JOIN employees e ON e.id = te.employee_id
		%s
		ORDER BY te.date DESC, te.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
			&entry.TotalHours, &entry.Status, &entry.Calculation, &entry.CreatedAt, &entry.UpdatedAt,
			&entry.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListOpenBefore implements timeentry.Repository.
func (t *timeEntryRepositoryImpl) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out,
			   total_hours, status, calculation, created_at, updated_at
		FROM time_entries
		WHERE status = $1 AND date < $2::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, timeentry.StatusInProgress, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
			&entry.TotalHours, &entry.Status, &entry.Calculation, &entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ListCompletedWithoutCalculation implements timeentry.Repository.
func (t *timeEntryRepositoryImpl) ListCompletedWithoutCalculation(ctx context.Context, limit int) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out,
			   total_hours, status, calculation, created_at, updated_at
		FROM time_entries
		WHERE status = $1 AND calculation IS NULL
		ORDER BY date ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, timeentry.StatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncalculated time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
			&entry.TotalHours, &entry.Status, &entry.Calculation, &entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
