package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticResolver returns the same schedule for every employee.
type staticResolver struct {
	schedule *workcycle.Schedule
	err      error
}

func (r staticResolver) GetEffectiveSchedule(context.Context, string) (*workcycle.Schedule, error) {
	return r.schedule, r.err
}

var (
	tuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC) // a Tuesday
	sunday  = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)  // a Sunday
)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func standardSchedule(slots ...workcycle.Slot) *workcycle.Schedule {
	return &workcycle.Schedule{
		ID:        "sched-1",
		Label:     "Mon-Fri 8am-5pm",
		StartTime: "08:00",
		EndTime:   "17:00",
		Slots:     slots,
	}
}

func TestCalculate_NoScheduleFallback(t *testing.T) {
	calc := NewCalculator(staticResolver{schedule: nil}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 7, 0),
		ClockOut:   at(tuesday, 19, 30),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	assert.InDelta(t, 12.5, got.NormalHours, 1e-9)
	assert.Zero(t, got.OvertimeHours)
	assert.Zero(t, got.SpecialHours)
	assert.Empty(t, got.Ranges)
}

func TestCalculate_NoScheduleFallback_Sunday(t *testing.T) {
	calc := NewCalculator(staticResolver{schedule: nil}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       sunday,
		ClockIn:    at(sunday, 9, 0),
		ClockOut:   at(sunday, 13, 0),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	// The fallback keeps the full span as normal; the Sunday bucket adds
	// the premium on top.
	assert.InDelta(t, 4.0, got.NormalHours, 1e-9)
	assert.Zero(t, got.OvertimeHours)
	assert.InDelta(t, 4.0, got.SpecialHours, 1e-9)
	assert.InDelta(t, 4.0, got.Breakdown.Sunday, 1e-9)
}

// The reference scenario: 08:00-17:00 schedule with a lunch break and an
// evening overtime window, worked 08:00-19:00 on a weekday.
func TestCalculate_BreakAndOvertimeSlots(t *testing.T) {
	schedule := standardSchedule(
		workcycle.Slot{StartTime: "12:00", EndTime: "13:00", Type: workcycle.SlotBreak, Label: "Lunch"},
		workcycle.Slot{StartTime: "17:00", EndTime: "20:00", Type: workcycle.SlotOvertime, Multiplier: decimal.NewFromFloat(1.5)},
	)
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 19, 0),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, got.NormalHours, 1e-9)
	assert.InDelta(t, 2.0, got.OvertimeHours, 1e-9)
	assert.Zero(t, got.SpecialHours)
	assert.InDelta(t, 1.0, got.Breakdown.Other, 1e-9)

	require.Len(t, got.Ranges, 2)
	assert.Equal(t, "Lunch", got.Ranges[0].Label)
	assert.InDelta(t, 1.0, got.Ranges[0].Hours, 1e-9)
	assert.Equal(t, workcycle.SlotOvertime, got.Ranges[1].Type)
	assert.InDelta(t, 2.0, got.Ranges[1].Hours, 1e-9)
	assert.Equal(t, "17:00", got.Ranges[1].Start)
	assert.Equal(t, "19:00", got.Ranges[1].End)
}

func TestCalculate_WrapPastMidnightSchedule(t *testing.T) {
	schedule := &workcycle.Schedule{
		Label:     "Night shift",
		StartTime: "22:00",
		EndTime:   "06:00",
	}
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 22, 30),
		ClockOut:   at(tuesday.AddDate(0, 0, 1), 5, 30),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	assert.InDelta(t, 7.0, got.NormalHours, 1e-9)
	assert.Zero(t, got.OvertimeHours)
}

// A break slot that itself wraps past midnight inside a night schedule.
func TestCalculate_WrapPastMidnightBreakSlot(t *testing.T) {
	schedule := &workcycle.Schedule{
		Label:     "Night shift",
		StartTime: "22:00",
		EndTime:   "06:00",
		Slots: []workcycle.Slot{
			{StartTime: "23:30", EndTime: "00:30", Type: workcycle.SlotBreak, Label: "Night break"},
		},
	}
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 22, 30),
		ClockOut:   at(tuesday.AddDate(0, 0, 1), 5, 30),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	// 7h worked, 1h of it the wrapping break.
	assert.InDelta(t, 6.0, got.NormalHours, 1e-9)
	assert.InDelta(t, 1.0, got.Breakdown.Other, 1e-9)
	assert.Zero(t, got.OvertimeHours)

	require.Len(t, got.Ranges, 1)
	assert.Equal(t, "Night break", got.Ranges[0].Label)
	assert.InDelta(t, 1.0, got.Ranges[0].Hours, 1e-9)
}

func TestCalculate_SundayOverride(t *testing.T) {
	schedule := standardSchedule(
		workcycle.Slot{StartTime: "12:00", EndTime: "13:00", Type: workcycle.SlotBreak, Label: "Lunch"},
	)
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       sunday,
		ClockIn:    at(sunday, 8, 0),
		ClockOut:   at(sunday, 16, 0),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	// The override claims the whole worked duration for the Sunday bucket
	// and resets normal so the day is not paid twice.
	assert.Zero(t, got.NormalHours)
	assert.InDelta(t, 8.0, got.Breakdown.Sunday, 1e-9)
	assert.InDelta(t, 8.0, got.SpecialHours, 1e-9)
	assert.InDelta(t, 1.0, got.Breakdown.Other, 1e-9)
}

func TestCalculate_HolidayOverride(t *testing.T) {
	schedule := standardSchedule()
	holidays := NewStaticHolidays(tuesday)
	calc := NewCalculator(staticResolver{schedule: schedule}, holidays)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 17, 0),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	assert.Zero(t, got.NormalHours)
	assert.InDelta(t, 9.0, got.Breakdown.Holiday, 1e-9)
	assert.InDelta(t, 9.0, got.SpecialHours, 1e-9)
}

func TestCalculate_SpecialSlotInsideSchedule(t *testing.T) {
	schedule := standardSchedule(
		workcycle.Slot{StartTime: "14:00", EndTime: "16:00", Type: workcycle.SlotSpecial, Label: "Hazard pay"},
	)
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 17, 0),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	assert.InDelta(t, 7.0, got.NormalHours, 1e-9)
	assert.Zero(t, got.OvertimeHours)
	assert.InDelta(t, 2.0, got.SpecialHours, 1e-9)

	require.Len(t, got.Ranges, 1)
	assert.True(t, got.Ranges[0].Multiplier.Equal(decimal.NewFromFloat(1.5)),
		"special slots default to the 1.5 multiplier")
}

// An entry-grace slot shows up in the audit trail without moving minutes.
func TestCalculate_EntryGraceLeavesBucketsAlone(t *testing.T) {
	schedule := standardSchedule(
		workcycle.Slot{StartTime: "08:00", EndTime: "08:15", Type: workcycle.SlotEntryGrace},
	)
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 17, 0),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	assert.InDelta(t, 9.0, got.NormalHours, 1e-9)
	require.Len(t, got.Ranges, 1)
	assert.InDelta(t, 0.25, got.Ranges[0].Hours, 1e-9)
	assert.Equal(t, workcycle.SlotEntryGrace, got.Ranges[0].Type)
}

// With disjoint slots fully inside the worked interval, the buckets add
// back up to the total worked time.
func TestCalculate_ConservationWithDisjointSlots(t *testing.T) {
	schedule := standardSchedule(
		workcycle.Slot{StartTime: "10:00", EndTime: "10:15", Type: workcycle.SlotBreak},
		workcycle.Slot{StartTime: "12:00", EndTime: "13:00", Type: workcycle.SlotBreak},
		workcycle.Slot{StartTime: "15:00", EndTime: "16:00", Type: workcycle.SlotSpecial},
	)
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 18, 0),
	}

	got, err := calc.CalculateHoursWorked(context.Background(), entry)
	require.NoError(t, err)

	total := got.NormalHours + got.OvertimeHours + got.SpecialHours + got.Breakdown.Other
	assert.InDelta(t, 10.0, total, 1e-9)
}

func TestCalculate_MalformedScheduleTime(t *testing.T) {
	schedule := &workcycle.Schedule{StartTime: "8h00", EndTime: "17:00"}
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 17, 0),
	}

	_, err := calc.CalculateHoursWorked(context.Background(), entry)
	assert.ErrorIs(t, err, timesheet.ErrMalformedTime)
}

func TestCalculate_MalformedSlotTime(t *testing.T) {
	schedule := standardSchedule(
		workcycle.Slot{StartTime: "12:00", EndTime: "noon", Type: workcycle.SlotBreak},
	)
	calc := NewCalculator(staticResolver{schedule: schedule}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 17, 0),
	}

	_, err := calc.CalculateHoursWorked(context.Background(), entry)
	assert.ErrorIs(t, err, timesheet.ErrMalformedTime)
}

func TestCalculate_ClockOutBeforeClockIn(t *testing.T) {
	calc := NewCalculator(staticResolver{schedule: standardSchedule()}, nil)

	entry := timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 17, 0),
		ClockOut:   at(tuesday, 17, 0),
	}

	_, err := calc.CalculateHoursWorked(context.Background(), entry)
	assert.ErrorIs(t, err, timesheet.ErrClockOutBeforeClockIn)
}
