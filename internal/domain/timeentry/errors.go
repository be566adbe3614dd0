package timeentry

import "errors"

var (
	ErrEntryNotFound         = errors.New("no time entry found for this day")
	ErrAlreadyClockedIn      = errors.New("clock-in already recorded for this day")
	ErrNotClockedIn          = errors.New("you must clock in first")
	ErrAlreadyClockedOut     = errors.New("clock-out already recorded")
	ErrFutureDate            = errors.New("cannot record a punch for a future date")
	ErrClockOutBeforeClockIn = errors.New("clock-out must be after clock-in")
)
