package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
	"github.com/gta-labs/gta-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type workCycleRepositoryImpl struct {
	db *database.DB
}

func NewWorkCycleRepository(db *database.DB) workcycle.WorkCycleRepository {
	return &workCycleRepositoryImpl{db: db}
}

// Create implements workcycle.WorkCycleRepository.
func (w *workCycleRepositoryImpl) Create(ctx context.Context, cycle workcycle.WorkCycle) (workcycle.WorkCycle, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_cycles (name, abbreviation, description, cycle_type, cycle_days, weekly_hours, overtime_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cycle.Name,
		cycle.Abbreviation,
		cycle.Description,
		cycle.CycleType,
		cycle.CycleDays,
		cycle.WeeklyHours,
		cycle.OvertimeThreshold,
	).Scan(&cycle.ID, &cycle.CreatedAt, &cycle.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return workcycle.WorkCycle{}, workcycle.ErrWorkCycleNameExists
		}
		return workcycle.WorkCycle{}, fmt.Errorf("failed to create work cycle: %w", err)
	}

	return cycle, nil
}

// GetByID implements workcycle.WorkCycleRepository. The schedule and its
// slots are loaded alongside the cycle.
func (w *workCycleRepositoryImpl) GetByID(ctx context.Context, id string) (workcycle.WorkCycle, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, name, abbreviation, description, cycle_type, cycle_days,
			   weekly_hours, overtime_threshold, created_at, updated_at, deleted_at
		FROM work_cycles
		WHERE id = $1 AND deleted_at IS NULL
	`

	var cycle workcycle.WorkCycle
	err := q.QueryRow(ctx, query, id).Scan(
		&cycle.ID, &cycle.Name, &cycle.Abbreviation, &cycle.Description, &cycle.CycleType, &cycle.CycleDays,
		&cycle.WeeklyHours, &cycle.OvertimeThreshold, &cycle.CreatedAt, &cycle.UpdatedAt, &cycle.DeletedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return workcycle.WorkCycle{}, workcycle.ErrWorkCycleNotFound
		}
		return workcycle.WorkCycle{}, fmt.Errorf("failed to get work cycle by ID: %w", err)
	}

	schedule, err := w.getScheduleByCycleID(ctx, q, cycle.ID)
	if err != nil {
		return workcycle.WorkCycle{}, err
	}
	cycle.Schedule = schedule

	return cycle, nil
}

// List implements workcycle.WorkCycleRepository.
func (w *workCycleRepositoryImpl) List(ctx context.Context, filter workcycle.WorkCycleFilter) ([]workcycle.WorkCycle, int64, error) {
	q := GetQuerier(ctx, w.db)

	where := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR abbreviation ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM work_cycles " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work cycles: %w", err)
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
		SELECT id, name, abbreviation, description, cycle_type, cycle_days,
			   weekly_hours, overtime_threshold, created_at, updated_at, deleted_at
		FROM work_cycles
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work cycles: %w", err)
	}
	defer rows.Close()

	var cycles []workcycle.WorkCycle
	for rows.Next() {
		var cycle workcycle.WorkCycle
		err := rows.Scan(
			&cycle.ID, &cycle.Name, &cycle.Abbreviation, &cycle.Description, &cycle.CycleType, &cycle.CycleDays,
			&cycle.WeeklyHours, &cycle.OvertimeThreshold, &cycle.CreatedAt, &cycle.UpdatedAt, &cycle.DeletedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		cycles = append(cycles, cycle)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return cycles, total, nil
}

// Update implements workcycle.WorkCycleRepository.
func (w *workCycleRepositoryImpl) Update(ctx context.Context, req workcycle.UpdateWorkCycleRequest) (workcycle.WorkCycle, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_cycles
		SET name = COALESCE($1, name),
			abbreviation = COALESCE($2, abbreviation),
			description = COALESCE($3, description),
			weekly_hours = COALESCE($4, weekly_hours),
			overtime_threshold = COALESCE($5, overtime_threshold),
			updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Name,
		req.Abbreviation,
		req.Description,
		req.WeeklyHours,
		req.OvertimeThreshold,
		req.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return workcycle.WorkCycle{}, workcycle.ErrWorkCycleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return workcycle.WorkCycle{}, workcycle.ErrWorkCycleNameExists
		}
		return workcycle.WorkCycle{}, fmt.Errorf("failed to update work cycle: %w", err)
	}

	return w.GetByID(ctx, updatedID)
}

// SoftDelete implements workcycle.WorkCycleRepository.
func (w *workCycleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE work_cycles
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return workcycle.ErrWorkCycleNotFound
		}
		return fmt.Errorf("failed to delete work cycle: %w", err)
	}

	return nil
}

// UpsertSchedule implements workcycle.WorkCycleRepository. The schedule row
// and its slots are replaced in one transaction so the processing order in
// the request becomes the stored position.
func (w *workCycleRepositoryImpl) UpsertSchedule(ctx context.Context, req workcycle.UpsertScheduleRequest) (workcycle.Schedule, error) {
	var schedule workcycle.Schedule

	err := WithTransaction(ctx, w.db, func(tx pgx.Tx) error {
		txCtx := withTx(ctx, tx)
		q := GetQuerier(txCtx, w.db)

		upsertQuery := `
			INSERT INTO schedules (work_cycle_id, label, abbreviation, start_time, end_time, total_hours, break_duration)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (work_cycle_id) DO UPDATE
			SET label = EXCLUDED.label,
				abbreviation = EXCLUDED.abbreviation,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				total_hours = EXCLUDED.total_hours,
				break_duration = EXCLUDED.break_duration,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`

		err := q.QueryRow(txCtx, upsertQuery,
			req.WorkCycleID,
			req.Label,
			req.Abbreviation,
			req.StartTime,
			req.EndTime,
			req.TotalHours,
			req.BreakDuration,
		).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return workcycle.ErrWorkCycleNotFound
			}
			return fmt.Errorf("failed to upsert schedule: %w", err)
		}

		schedule.WorkCycleID = req.WorkCycleID
		schedule.Label = req.Label
		schedule.Abbreviation = req.Abbreviation
		schedule.StartTime = req.StartTime
		schedule.EndTime = req.EndTime
		schedule.TotalHours = req.TotalHours
		schedule.BreakDuration = req.BreakDuration

		if _, err := q.Exec(txCtx, `DELETE FROM slots WHERE schedule_id = $1`, schedule.ID); err != nil {
			return fmt.Errorf("failed to clear schedule slots: %w", err)
		}

		insertSlot := `
			INSERT INTO slots (schedule_id, start_time, end_time, type, multiplier, label, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at
		`

		for i, input := range req.Slots {
			slotType, err := workcycle.ParseSlotType(input.Type)
			if err != nil {
				return err
			}

			multiplier := decimal.Zero
			if input.Multiplier != "" {
				multiplier, err = decimal.NewFromString(input.Multiplier)
				if err != nil {
					return workcycle.ErrInvalidRequestData
				}
			}

			slot := workcycle.Slot{
				ScheduleID: schedule.ID,
				StartTime:  input.StartTime,
				EndTime:    input.EndTime,
				Type:       slotType,
				Multiplier: multiplier,
				Label:      input.Label,
				Position:   i,
			}

			err = q.QueryRow(txCtx, insertSlot,
				slot.ScheduleID,
				slot.StartTime,
				slot.EndTime,
				slot.Type,
				slot.Multiplier,
				slot.Label,
				slot.Position,
			).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert slot: %w", err)
			}

			schedule.Slots = append(schedule.Slots, slot)
		}

		return nil
	})
	if err != nil {
		return workcycle.Schedule{}, err
	}

	return schedule, nil
}

// GetEffectiveSchedule implements workcycle.WorkCycleRepository.
func (w *workCycleRepositoryImpl) GetEffectiveSchedule(ctx context.Context, employeeID string) (*workcycle.Schedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT s.id, s.work_cycle_id, s.label, s.abbreviation, s.start_time, s.end_time,
			   s.total_hours, s.break_duration, s.created_at, s.updated_at
		FROM employees e
		JOIN work_cycles wc ON wc.id = e.work_cycle_id AND wc.deleted_at IS NULL
		JOIN schedules s ON s.work_cycle_id = wc.id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var schedule workcycle.Schedule
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&schedule.ID, &schedule.WorkCycleID, &schedule.Label, &schedule.Abbreviation,
		&schedule.StartTime, &schedule.EndTime,
		&schedule.TotalHours, &schedule.BreakDuration, &schedule.CreatedAt, &schedule.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no cycle assigned, or cycle has no schedule
		}
		return nil, fmt.Errorf("failed to resolve effective schedule: %w", err)
	}

	slots, err := w.loadSlots(ctx, q, schedule.ID)
	if err != nil {
		return nil, err
	}
	schedule.Slots = slots

	return &schedule, nil
}

func (w *workCycleRepositoryImpl) getScheduleByCycleID(ctx context.Context, q database.Querier, cycleID string) (*workcycle.Schedule, error) {
	query := `
		SELECT id, work_cycle_id, label, abbreviation, start_time, end_time,
			   total_hours, break_duration, created_at, updated_at
		FROM schedules
		WHERE work_cycle_id = $1
	`

	var schedule workcycle.Schedule
	err := q.QueryRow(ctx, query, cycleID).Scan(
		&schedule.ID, &schedule.WorkCycleID, &schedule.Label, &schedule.Abbreviation,
		&schedule.StartTime, &schedule.EndTime,
		&schedule.TotalHours, &schedule.BreakDuration, &schedule.CreatedAt, &schedule.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule for work cycle: %w", err)
	}

	slots, err := w.loadSlots(ctx, q, schedule.ID)
	if err != nil {
		return nil, err
	}
	schedule.Slots = slots

	return &schedule, nil
}

func (w *workCycleRepositoryImpl) loadSlots(ctx context.Context, q database.Querier, scheduleID string) ([]workcycle.Slot, error) {
	query := `
		SELECT id, schedule_id, start_time, end_time, type, multiplier, label, position, created_at, updated_at
		FROM slots
		WHERE schedule_id = $1
		ORDER BY position ASC
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule slots: %w", err)
	}
	defer rows.Close()

	var slots []workcycle.Slot
	for rows.Next() {
		var slot workcycle.Slot
		var rawType string
		err := rows.Scan(
			&slot.ID, &slot.ScheduleID, &slot.StartTime, &slot.EndTime, &rawType,
			&slot.Multiplier, &slot.Label, &slot.Position, &slot.CreatedAt, &slot.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		// Stored types may use legacy spellings.
		slot.Type, err = workcycle.ParseSlotType(rawType)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.ID, err)
		}

		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
