package timesheet

import "errors"

var (
	// ErrMalformedTime reports a schedule or slot time string that does
	// not parse as "HH:MM".
	ErrMalformedTime = errors.New("malformed time, expected HH:MM")

	ErrClockOutBeforeClockIn = errors.New("clock-out must be after clock-in")
)
