package specialhour

import "errors"

var (
	ErrSpecialHourNotFound = errors.New("special hour record not found")
	ErrAlreadyExists       = errors.New("special hour record already exists for this day")
	ErrAlreadyProcessed    = errors.New("special hour record has already been approved or rejected")
)
