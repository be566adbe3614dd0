package overtime

import "errors"

var (
	ErrOvertimeNotFound = errors.New("overtime record not found")

	// ErrAlreadyExists reports a second record for the same employee and
	// day. The unique constraint in storage is the real deduplication
	// guard; callers treat this as "already materialized".
	ErrAlreadyExists = errors.New("overtime record already exists for this day")

	ErrAlreadyProcessed = errors.New("overtime record has already been approved or rejected")
)
