package workcycle

import "errors"

var (
	ErrWorkCycleNotFound   = errors.New("work cycle not found")
	ErrWorkCycleNameExists = errors.New("work cycle with this name already exists")
	ErrScheduleNotFound    = errors.New("schedule not found for this work cycle")
	ErrUnknownSlotType     = errors.New("unknown slot type")
	ErrInvalidRequestData  = errors.New("invalid request data")
)
