package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/gta-labs/gta-backend-go/internal/domain/notification"
	"github.com/gta-labs/gta-backend-go/internal/domain/overtime"
	"github.com/gta-labs/gta-backend-go/internal/domain/specialhour"
	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
)

// materializationThreshold: computed hours at or below this never
// materialize a record.
const materializationThreshold = 0.25

// Materializer turns a decomposition result into at most one pending
// overtime and one pending special-hours record per employee-day. The
// unique constraint on (employee_id, date) in storage is the real
// deduplication guard; the existence pre-check is an optimization.
//
// Every failure here is logged and swallowed: a clock-out that has already
// been recorded must never fail because derived accounting did.
type Materializer struct {
	overtimes     overtime.Repository
	specialHours  specialhour.Repository
	notifications notification.Service // optional
}

func NewMaterializer(overtimes overtime.Repository, specialHours specialhour.Repository, notifications notification.Service) *Materializer {
	return &Materializer{
		overtimes:     overtimes,
		specialHours:  specialHours,
		notifications: notifications,
	}
}

// AutoCreateOvertimeAndSpecialHours implements timesheet.Service.
func (m *Materializer) AutoCreateOvertimeAndSpecialHours(ctx context.Context, entry timesheet.WorkedInterval, hours timesheet.CalculatedHours) {
	if hours.OvertimeHours > materializationThreshold {
		m.materializeOvertime(ctx, entry, hours)
	}
	if hours.SpecialHours > materializationThreshold {
		m.materializeSpecialHours(ctx, entry, hours)
	}
}

func (m *Materializer) materializeOvertime(ctx context.Context, entry timesheet.WorkedInterval, hours timesheet.CalculatedHours) {
	existing, err := m.overtimes.GetByEmployeeAndDay(ctx, entry.EmployeeID, entry.Date)
	if err != nil {
		slog.Error("overtime materialization lookup failed",
			"employee_id", entry.EmployeeID, "date", entry.Date.Format("2006-01-02"), "error", err)
		return
	}
	if existing != nil {
		return
	}

	record := overtime.Overtime{
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		Hours:      round2(hours.OvertimeHours),
		Reason: fmt.Sprintf("Automatic calculation from schedule (%.2fh overtime + %.2fh night)",
			hours.Breakdown.Overtime, hours.Breakdown.NightShift),
		Status: overtime.StatusPending,
	}

	created, err := m.overtimes.Create(ctx, record)
	if err != nil {
		if errors.Is(err, overtime.ErrAlreadyExists) {
			// Concurrent clock-out processing beat us to it.
			return
		}
		slog.Error("overtime materialization failed",
			"employee_id", entry.EmployeeID, "date", entry.Date.Format("2006-01-02"), "error", err)
		return
	}

	m.notify(ctx, notification.TypeOvertimePending, entry, created.Hours)
}

func (m *Materializer) materializeSpecialHours(ctx context.Context, entry timesheet.WorkedInterval, hours timesheet.CalculatedHours) {
	existing, err := m.specialHours.GetByEmployeeAndDay(ctx, entry.EmployeeID, entry.Date)
	if err != nil {
		slog.Error("special hours materialization lookup failed",
			"employee_id", entry.EmployeeID, "date", entry.Date.Format("2006-01-02"), "error", err)
		return
	}
	if existing != nil {
		return
	}

	record := specialhour.SpecialHour{
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		Hours:      round2(hours.SpecialHours),
		HourType:   classifyHourType(hours.Breakdown),
		Reason:     specialHoursReason(hours.Breakdown),
		Status:     specialhour.StatusPending,
	}

	created, err := m.specialHours.Create(ctx, record)
	if err != nil {
		if errors.Is(err, specialhour.ErrAlreadyExists) {
			return
		}
		slog.Error("special hours materialization failed",
			"employee_id", entry.EmployeeID, "date", entry.Date.Format("2006-01-02"), "error", err)
		return
	}

	m.notify(ctx, notification.TypeSpecialHourPending, entry, created.Hours)
}

func (m *Materializer) notify(ctx context.Context, notifType notification.Type, entry timesheet.WorkedInterval, hours float64) {
	if m.notifications == nil {
		return
	}
	if err := m.notifications.NotifyPendingApproval(ctx, notifType, entry.EmployeeID, entry.Date, hours); err != nil {
		slog.Warn("pending approval notification failed",
			"employee_id", entry.EmployeeID, "type", notifType, "error", err)
	}
}

// classifyHourType picks the premium label by priority; first non-zero
// component wins, which is lossy when several premium categories coexist
// in one day.
func classifyHourType(b timesheet.Breakdown) specialhour.HourType {
	switch {
	case b.Sunday > 0:
		return specialhour.HourTypeWeekend
	case b.Holiday > 0:
		return specialhour.HourTypeHoliday
	case b.NightShift > 0:
		return specialhour.HourTypeNightShift
	default:
		return specialhour.HourTypeOnCall
	}
}

func specialHoursReason(b timesheet.Breakdown) string {
	parts := []string{}
	if b.Sunday > 0 {
		parts = append(parts, fmt.Sprintf("%.2fh sunday", b.Sunday))
	}
	if b.Holiday > 0 {
		parts = append(parts, fmt.Sprintf("%.2fh holiday", b.Holiday))
	}
	if b.Other > 0 {
		parts = append(parts, fmt.Sprintf("%.2fh other", b.Other))
	}
	return "Automatic calculation: " + strings.Join(parts, " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
