package timeentry

import (
	"errors"
	"testing"

	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockInRequest_Validate(t *testing.T) {
	noTime := ClockInRequest{EmployeeID: "emp-1"}
	assert.NoError(t, noTime.Validate())

	withTime := ClockInRequest{EmployeeID: "emp-1", Time: "2026-03-02T08:00:00Z"}
	assert.NoError(t, withTime.Validate())

	bad := ClockInRequest{Time: "yesterday"}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "time")
}

func TestClockOutRequest_Validate(t *testing.T) {
	valid := ClockOutRequest{EmployeeID: "emp-1", Time: "2026-03-02T17:30:00+01:00"}
	assert.NoError(t, valid.Validate())

	bad := ClockOutRequest{EmployeeID: "emp-1", Time: "17:30"}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "time")
}
