package timesheet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/overtime"
	"github.com/gta-labs/gta-backend-go/internal/domain/specialhour"
	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOvertimeRepo struct {
	records   map[string]overtime.Overtime
	createErr error
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{records: map[string]overtime.Overtime{}}
}

func dayKey(employeeID string, day time.Time) string {
	return employeeID + "|" + day.Format(time.DateOnly)
}

func (f *fakeOvertimeRepo) Create(_ context.Context, record overtime.Overtime) (overtime.Overtime, error) {
	if f.createErr != nil {
		return overtime.Overtime{}, f.createErr
	}
	key := dayKey(record.EmployeeID, record.Date)
	if _, ok := f.records[key]; ok {
		return overtime.Overtime{}, overtime.ErrAlreadyExists
	}
	record.ID = key
	f.records[key] = record
	return record, nil
}

func (f *fakeOvertimeRepo) GetByID(context.Context, string) (overtime.Overtime, error) {
	return overtime.Overtime{}, overtime.ErrOvertimeNotFound
}

func (f *fakeOvertimeRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) (*overtime.Overtime, error) {
	if rec, ok := f.records[dayKey(employeeID, day)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeOvertimeRepo) List(context.Context, overtime.Filter) ([]overtime.Overtime, int64, error) {
	return nil, 0, nil
}

func (f *fakeOvertimeRepo) UpdateStatus(context.Context, string, overtime.Status, string, *string) (overtime.Overtime, error) {
	return overtime.Overtime{}, overtime.ErrOvertimeNotFound
}

type fakeSpecialHourRepo struct {
	records   map[string]specialhour.SpecialHour
	createErr error
}

func newFakeSpecialHourRepo() *fakeSpecialHourRepo {
	return &fakeSpecialHourRepo{records: map[string]specialhour.SpecialHour{}}
}

func (f *fakeSpecialHourRepo) Create(_ context.Context, record specialhour.SpecialHour) (specialhour.SpecialHour, error) {
	if f.createErr != nil {
		return specialhour.SpecialHour{}, f.createErr
	}
	key := dayKey(record.EmployeeID, record.Date)
	if _, ok := f.records[key]; ok {
		return specialhour.SpecialHour{}, specialhour.ErrAlreadyExists
	}
	record.ID = key
	f.records[key] = record
	return record, nil
}

func (f *fakeSpecialHourRepo) GetByID(context.Context, string) (specialhour.SpecialHour, error) {
	return specialhour.SpecialHour{}, specialhour.ErrSpecialHourNotFound
}

func (f *fakeSpecialHourRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) (*specialhour.SpecialHour, error) {
	if rec, ok := f.records[dayKey(employeeID, day)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeSpecialHourRepo) List(context.Context, specialhour.Filter) ([]specialhour.SpecialHour, int64, error) {
	return nil, 0, nil
}

func (f *fakeSpecialHourRepo) UpdateStatus(context.Context, string, specialhour.Status, string, *string) (specialhour.SpecialHour, error) {
	return specialhour.SpecialHour{}, specialhour.ErrSpecialHourNotFound
}

func testEntry() timesheet.WorkedInterval {
	return timesheet.WorkedInterval{
		EmployeeID: "emp-1",
		Date:       tuesday,
		ClockIn:    at(tuesday, 8, 0),
		ClockOut:   at(tuesday, 19, 0),
	}
}

func TestMaterialize_CreatesPendingRecords(t *testing.T) {
	overtimes := newFakeOvertimeRepo()
	specials := newFakeSpecialHourRepo()
	m := NewMaterializer(overtimes, specials, nil)

	hours := timesheet.CalculatedHours{
		OvertimeHours: 2.0,
		SpecialHours:  1.5,
		Breakdown:     timesheet.Breakdown{Overtime: 2.0, Sunday: 1.5},
	}

	m.AutoCreateOvertimeAndSpecialHours(context.Background(), testEntry(), hours)

	require.Len(t, overtimes.records, 1)
	require.Len(t, specials.records, 1)

	for _, rec := range overtimes.records {
		assert.Equal(t, overtime.StatusPending, rec.Status)
		assert.InDelta(t, 2.0, rec.Hours, 1e-9)
		assert.Contains(t, rec.Reason, "2.00h overtime")
	}
	for _, rec := range specials.records {
		assert.Equal(t, specialhour.StatusPending, rec.Status)
		assert.Equal(t, specialhour.HourTypeWeekend, rec.HourType)
		assert.Contains(t, rec.Reason, "1.50h sunday")
	}
}

func TestMaterialize_ThresholdBoundary(t *testing.T) {
	overtimes := newFakeOvertimeRepo()
	m := NewMaterializer(overtimes, newFakeSpecialHourRepo(), nil)

	// Exactly 0.25h does not materialize.
	m.AutoCreateOvertimeAndSpecialHours(context.Background(), testEntry(), timesheet.CalculatedHours{OvertimeHours: 0.25})
	assert.Empty(t, overtimes.records)

	// 0.26h does.
	m.AutoCreateOvertimeAndSpecialHours(context.Background(), testEntry(), timesheet.CalculatedHours{OvertimeHours: 0.26})
	assert.Len(t, overtimes.records, 1)
}

func TestMaterialize_IdempotentPerDay(t *testing.T) {
	overtimes := newFakeOvertimeRepo()
	specials := newFakeSpecialHourRepo()
	m := NewMaterializer(overtimes, specials, nil)

	hours := timesheet.CalculatedHours{
		OvertimeHours: 1.0,
		SpecialHours:  1.0,
		Breakdown:     timesheet.Breakdown{Overtime: 1.0, Holiday: 1.0},
	}

	// A retried clock-out calculation must not duplicate records.
	m.AutoCreateOvertimeAndSpecialHours(context.Background(), testEntry(), hours)
	m.AutoCreateOvertimeAndSpecialHours(context.Background(), testEntry(), hours)

	assert.Len(t, overtimes.records, 1)
	assert.Len(t, specials.records, 1)
}

func TestMaterialize_StorageFailureIsSwallowed(t *testing.T) {
	overtimes := newFakeOvertimeRepo()
	overtimes.createErr = errors.New("connection refused")
	specials := newFakeSpecialHourRepo()
	specials.createErr = errors.New("connection refused")
	m := NewMaterializer(overtimes, specials, nil)

	hours := timesheet.CalculatedHours{OvertimeHours: 2.0, SpecialHours: 2.0}

	// Must not panic or propagate; the punch is already recorded.
	m.AutoCreateOvertimeAndSpecialHours(context.Background(), testEntry(), hours)

	assert.Empty(t, overtimes.records)
	assert.Empty(t, specials.records)
}

func TestClassifyHourType_Priority(t *testing.T) {
	cases := []struct {
		name      string
		breakdown timesheet.Breakdown
		want      specialhour.HourType
	}{
		{"sunday wins over holiday", timesheet.Breakdown{Sunday: 2, Holiday: 3}, specialhour.HourTypeWeekend},
		{"holiday", timesheet.Breakdown{Holiday: 3}, specialhour.HourTypeHoliday},
		{"night shift", timesheet.Breakdown{NightShift: 1}, specialhour.HourTypeNightShift},
		{"default on-call", timesheet.Breakdown{}, specialhour.HourTypeOnCall},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, classifyHourType(c.breakdown), c.name)
	}
}
