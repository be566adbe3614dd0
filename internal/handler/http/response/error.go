package response

import (
	"errors"
	"net/http"

	"github.com/gta-labs/gta-backend-go/internal/domain/auth"
	"github.com/gta-labs/gta-backend-go/internal/domain/employee"
	"github.com/gta-labs/gta-backend-go/internal/domain/overtime"
	"github.com/gta-labs/gta-backend-go/internal/domain/specialhour"
	"github.com/gta-labs/gta-backend-go/internal/domain/timeentry"
	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrAdminAccessRequired),
		errors.Is(err, auth.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Work cycle domain errors
	case errors.Is(err, workcycle.ErrWorkCycleNotFound):
		NotFound(w, "Work cycle not found")
	case errors.Is(err, workcycle.ErrWorkCycleNameExists):
		Conflict(w, "Work cycle with this name already exists")
	case errors.Is(err, workcycle.ErrScheduleNotFound):
		NotFound(w, "Schedule not found for this work cycle")
	case errors.Is(err, workcycle.ErrUnknownSlotType),
		errors.Is(err, workcycle.ErrInvalidRequestData):
		BadRequest(w, err.Error(), nil)

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "No time entry found for this day")
	case errors.Is(err, timeentry.ErrAlreadyClockedIn):
		Conflict(w, "Clock-in already recorded for this day")
	case errors.Is(err, timeentry.ErrNotClockedIn):
		BadRequest(w, "You must clock in first", nil)
	case errors.Is(err, timeentry.ErrAlreadyClockedOut):
		Conflict(w, "Clock-out already recorded")
	case errors.Is(err, timeentry.ErrFutureDate):
		BadRequest(w, "Cannot record a punch for a future date", nil)
	case errors.Is(err, timeentry.ErrClockOutBeforeClockIn):
		BadRequest(w, "Clock-out must be after clock-in", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrAlreadyExists):
		Conflict(w, "Overtime record already exists for this day")
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime record has already been processed")

	// Special hour domain errors
	case errors.Is(err, specialhour.ErrSpecialHourNotFound):
		NotFound(w, "Special hour record not found")
	case errors.Is(err, specialhour.ErrAlreadyExists):
		Conflict(w, "Special hour record already exists for this day")
	case errors.Is(err, specialhour.ErrAlreadyProcessed):
		Conflict(w, "Special hour record has already been processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
