package workcycle

import (
	"errors"
	"testing"

	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkCycleRequest_Validate(t *testing.T) {
	valid := CreateWorkCycleRequest{
		Name:         "Standard 35h",
		Abbreviation: "STD35",
		CycleType:    "WEEKLY",
		CycleDays:    7,
		WeeklyHours:  35,
	}
	assert.NoError(t, valid.Validate())

	bad := CreateWorkCycleRequest{CycleType: "DAILY"}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "abbreviation")
	assert.Contains(t, fields, "cycle_type")
	assert.Contains(t, fields, "cycle_days")
	assert.Contains(t, fields, "weekly_hours")
}

func TestUpsertScheduleRequest_Validate(t *testing.T) {
	valid := UpsertScheduleRequest{
		Label:     "Day shift",
		StartTime: "08:00",
		EndTime:   "17:00",
		Slots: []SlotInput{
			{StartTime: "12:00", EndTime: "13:00", Type: "PAUSE"},
			{StartTime: "17:00", EndTime: "19:00", Type: "OVERTIME", Multiplier: "1.25"},
		},
	}
	assert.NoError(t, valid.Validate())

	bad := UpsertScheduleRequest{
		Label:     "Broken",
		StartTime: "8am",
		EndTime:   "25:00",
		Slots: []SlotInput{
			{StartTime: "12:00", EndTime: "13:00", Type: "SIESTA"},
		},
	}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	fields := errs.ToMap()
	assert.Contains(t, fields, "start_time")
	assert.Contains(t, fields, "end_time")
	assert.Contains(t, fields, "slots[0].type")
}
