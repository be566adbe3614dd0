package timeentry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/employee"
	"github.com/gta-labs/gta-backend-go/internal/domain/timeentry"
	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

type TimeEntryServiceImpl struct {
	entries   timeentry.Repository
	employees employee.EmployeeRepository
	engine    timesheet.Service
}

func NewTimeEntryService(entries timeentry.Repository, employees employee.EmployeeRepository, engine timesheet.Service) timeentry.Service {
	return &TimeEntryServiceImpl{
		entries:   entries,
		employees: employees,
		engine:    engine,
	}
}

// ClockIn implements timeentry.Service.
func (s *TimeEntryServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.EntryResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return timeentry.EntryResponse{}, err
	}

	clockIn, err := resolvePunchTime(req.Time)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	date := dayOf(clockIn)
	if date.After(dayOf(time.Now())) {
		return timeentry.EntryResponse{}, timeentry.ErrFutureDate
	}

	existing, err := s.entries.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}
	if existing != nil {
		return timeentry.EntryResponse{}, timeentry.ErrAlreadyClockedIn
	}

	entry, err := s.entries.Create(ctx, timeentry.TimeEntry{
		EmployeeID: req.EmployeeID,
		Date:       date,
		ClockIn:    &clockIn,
		Status:     timeentry.StatusInProgress,
	})
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	return toEntryResponse(entry), nil
}

// ClockOut implements timeentry.Service. The entry is keyed by the
// clock-in day; a punch-out after midnight closes the previous day's
// session.
func (s *TimeEntryServiceImpl) ClockOut(ctx context.Context, req timeentry.ClockOutRequest) (timeentry.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.EntryResponse{}, err
	}

	clockOut, err := resolvePunchTime(req.Time)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	entry, err := s.findOpenEntry(ctx, req.EmployeeID, clockOut)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	if entry.ClockIn == nil {
		return timeentry.EntryResponse{}, timeentry.ErrNotClockedIn
	}
	if !clockOut.After(*entry.ClockIn) {
		return timeentry.EntryResponse{}, timeentry.ErrClockOutBeforeClockIn
	}

	total := round2(clockOut.Sub(*entry.ClockIn).Hours())
	entry.ClockOut = &clockOut
	entry.TotalHours = &total
	entry.Status = timeentry.StatusCompleted
	entry.Calculation = s.runCalculation(ctx, *entry)

	if err := s.entries.Update(ctx, *entry); err != nil {
		return timeentry.EntryResponse{}, err
	}

	return toEntryResponse(*entry), nil
}

// runCalculation runs the decomposition engine and the derived-record
// materializer. Failures are logged, never propagated: the punch itself is
// already recorded, and cron retries entries left without a calculation.
func (s *TimeEntryServiceImpl) runCalculation(ctx context.Context, entry timeentry.TimeEntry) *string {
	interval := timesheet.WorkedInterval{
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		ClockIn:    *entry.ClockIn,
		ClockOut:   *entry.ClockOut,
	}

	hours, err := s.engine.CalculateHoursWorked(ctx, interval)
	if err != nil {
		slog.Error("work-time decomposition failed",
			"employee_id", entry.EmployeeID, "date", entry.Date.Format(time.DateOnly), "error", err)
		return nil
	}

	s.engine.AutoCreateOvertimeAndSpecialHours(ctx, interval, hours)

	encoded, err := json.Marshal(hours)
	if err != nil {
		slog.Error("failed to encode calculation result",
			"employee_id", entry.EmployeeID, "date", entry.Date.Format(time.DateOnly), "error", err)
		return nil
	}

	result := string(encoded)
	return &result
}

func (s *TimeEntryServiceImpl) findOpenEntry(ctx context.Context, employeeID string, clockOut time.Time) (*timeentry.TimeEntry, error) {
	date := dayOf(clockOut)

	entry, err := s.entries.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	// A shift wrapping midnight clocks out on the calendar day after its
	// entry's working day.
	if entry == nil || entry.Status == timeentry.StatusCompleted {
		previous, err := s.entries.GetByEmployeeAndDate(ctx, employeeID, date.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
		if previous != nil && previous.Status == timeentry.StatusInProgress {
			return previous, nil
		}
	}

	if entry == nil {
		return nil, timeentry.ErrNotClockedIn
	}
	if entry.Status == timeentry.StatusCompleted {
		return nil, timeentry.ErrAlreadyClockedOut
	}

	return entry, nil
}

// Get implements timeentry.Service.
func (s *TimeEntryServiceImpl) Get(ctx context.Context, id string) (timeentry.EntryResponse, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	return toEntryResponse(entry), nil
}

// List implements timeentry.Service.
func (s *TimeEntryServiceImpl) List(ctx context.Context, filter timeentry.Filter) ([]timeentry.EntryResponse, int64, error) {
	entries, total, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timeentry.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	return responses, total, nil
}

// Validate implements timeentry.Service.
func (s *TimeEntryServiceImpl) Validate(ctx context.Context, filter timeentry.Filter) ([]timeentry.ValidationIssue, error) {
	filter.Page = 0
	filter.Limit = validationScanLimit

	entries, _, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	issues := []timeentry.ValidationIssue{}
	for _, entry := range entries {
		var problems []string

		if entry.ClockIn == nil {
			problems = append(problems, "missing clock-in")
		}
		if entry.ClockOut == nil {
			problems = append(problems, "missing clock-out")
		}
		if entry.ClockIn != nil && entry.ClockOut != nil && !entry.ClockOut.After(*entry.ClockIn) {
			problems = append(problems, "clock-out not after clock-in")
		}
		if entry.Status == timeentry.StatusCompleted && entry.Calculation == nil {
			problems = append(problems, "calculation missing")
		}

		if len(problems) > 0 {
			issues = append(issues, timeentry.ValidationIssue{
				EntryID:    entry.ID,
				EmployeeID: entry.EmployeeID,
				Date:       entry.Date.Format(time.DateOnly),
				Problems:   problems,
			})
		}
	}

	return issues, nil
}

const validationScanLimit = 1000

func resolvePunchTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}

	t, ok := validator.IsValidDateTime(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid punch time %q", raw)
	}
	return t, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toEntryResponse(entry timeentry.TimeEntry) timeentry.EntryResponse {
	resp := timeentry.EntryResponse{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		EmployeeName: entry.EmployeeName,
		Date:         entry.Date.Format(time.DateOnly),
		TotalHours:   entry.TotalHours,
		Status:       string(entry.Status),
		Calculation:  entry.Calculation,
	}

	if entry.ClockIn != nil {
		v := entry.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if entry.ClockOut != nil {
		v := entry.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}

	return resp
}
