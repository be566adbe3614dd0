package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/timeentry"
	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
)

// staleSessionFallback caps an auto-closed session when no schedule is
// resolvable for the employee.
const staleSessionFallback = 8 * time.Hour

type TimeEntryJobs struct {
	entries   timeentry.Repository
	schedules timesheet.ScheduleResolver
	engine    timesheet.Service
}

func NewTimeEntryJobs(
	entries timeentry.Repository,
	schedules timesheet.ScheduleResolver,
	engine timesheet.Service,
) *TimeEntryJobs {
	return &TimeEntryJobs{
		entries:   entries,
		schedules: schedules,
		engine:    engine,
	}
}

func (j *TimeEntryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_time_entries", 1*time.Hour, j.AutoCloseStaleEntries)
	scheduler.AddJob("retry_missing_calculations", 15*time.Minute, j.RetryMissingCalculations)
}

// AutoCloseStaleEntries closes in-progress entries from previous working
// days. The clock-out is pinned to the scheduled end of day when the
// employee has a schedule, otherwise to clock-in plus a fixed fallback.
func (j *TimeEntryJobs) AutoCloseStaleEntries(ctx context.Context) error {
	today := dayOf(time.Now())

	stale, err := j.entries.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list stale entries: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	closedCount := 0
	for _, entry := range stale {
		if entry.ClockIn == nil {
			continue
		}

		clockOut := j.resolveClockOut(ctx, entry)
		if !clockOut.After(*entry.ClockIn) {
			clockOut = entry.ClockIn.Add(staleSessionFallback)
		}

		total := round2(clockOut.Sub(*entry.ClockIn).Hours())
		entry.ClockOut = &clockOut
		entry.TotalHours = &total
		entry.Status = timeentry.StatusCompleted
		entry.Calculation = j.calculate(ctx, entry)

		if err := j.entries.Update(ctx, entry); err != nil {
			slog.Error("Cron: failed to auto-close time entry",
				"entry_id", entry.ID, "employee_id", entry.EmployeeID, "error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: auto-closed stale time entries", "count", closedCount, "stale", len(stale))
	return nil
}

// RetryMissingCalculations re-runs the decomposition engine for completed
// entries whose fail-soft calculation never landed.
func (j *TimeEntryJobs) RetryMissingCalculations(ctx context.Context) error {
	pending, err := j.entries.ListCompletedWithoutCalculation(ctx, 100)
	if err != nil {
		return fmt.Errorf("failed to list uncalculated entries: %w", err)
	}

	retried := 0
	for _, entry := range pending {
		if entry.ClockIn == nil || entry.ClockOut == nil {
			continue
		}

		calculation := j.calculate(ctx, entry)
		if calculation == nil {
			continue
		}

		entry.Calculation = calculation
		if err := j.entries.Update(ctx, entry); err != nil {
			slog.Error("Cron: failed to store retried calculation",
				"entry_id", entry.ID, "employee_id", entry.EmployeeID, "error", err)
			continue
		}
		retried++
	}

	if retried > 0 {
		slog.Info("Cron: retried missing calculations", "count", retried)
	}
	return nil
}

func (j *TimeEntryJobs) calculate(ctx context.Context, entry timeentry.TimeEntry) *string {
	interval := timesheet.WorkedInterval{
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		ClockIn:    *entry.ClockIn,
		ClockOut:   *entry.ClockOut,
	}

	hours, err := j.engine.CalculateHoursWorked(ctx, interval)
	if err != nil {
		slog.Error("Cron: work-time decomposition failed",
			"entry_id", entry.ID, "employee_id", entry.EmployeeID, "error", err)
		return nil
	}

	j.engine.AutoCreateOvertimeAndSpecialHours(ctx, interval, hours)

	encoded, err := json.Marshal(hours)
	if err != nil {
		slog.Error("Cron: failed to encode calculation result",
			"entry_id", entry.ID, "employee_id", entry.EmployeeID, "error", err)
		return nil
	}

	result := string(encoded)
	return &result
}

// resolveClockOut pins the auto-close timestamp to the scheduled end of
// the entry's working day, rolling past midnight for wrapping windows.
func (j *TimeEntryJobs) resolveClockOut(ctx context.Context, entry timeentry.TimeEntry) time.Time {
	fallback := entry.ClockIn.Add(staleSessionFallback)

	schedule, err := j.schedules.GetEffectiveSchedule(ctx, entry.EmployeeID)
	if err != nil || schedule == nil {
		return fallback
	}

	endHour, endMinute, ok := splitClock(schedule.EndTime)
	if !ok {
		return fallback
	}

	end := time.Date(entry.Date.Year(), entry.Date.Month(), entry.Date.Day(),
		endHour, endMinute, 0, 0, entry.Date.Location())
	if !end.After(*entry.ClockIn) {
		end = end.AddDate(0, 0, 1)
	}

	return end
}

func splitClock(value string) (hour, minute int, ok bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return hour, minute, true
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
