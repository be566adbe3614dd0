package workcycle

import (
	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

type CreateWorkCycleRequest struct {
	Name              string  `json:"name"`
	Abbreviation      string  `json:"abbreviation"`
	Description       *string `json:"description,omitempty"`
	CycleType         string  `json:"cycle_type"`
	CycleDays         int     `json:"cycle_days"`
	WeeklyHours       float64 `json:"weekly_hours"`
	OvertimeThreshold float64 `json:"overtime_threshold"`
}

func (r *CreateWorkCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Abbreviation) {
		errs = append(errs, validator.ValidationError{
			Field:   "abbreviation",
			Message: "abbreviation is required",
		})
	}

	if !validator.IsInSlice(r.CycleType, []string{"WEEKLY", "MONTHLY"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "cycle_type",
			Message: "cycle_type must be WEEKLY or MONTHLY",
		})
	}

	if r.CycleDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "cycle_days",
			Message: "cycle_days must be positive",
		})
	}

	if r.WeeklyHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_hours",
			Message: "weekly_hours must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkCycleRequest struct {
	ID                string   `json:"-"`
	Name              *string  `json:"name,omitempty"`
	Abbreviation      *string  `json:"abbreviation,omitempty"`
	Description       *string  `json:"description,omitempty"`
	WeeklyHours       *float64 `json:"weekly_hours,omitempty"`
	OvertimeThreshold *float64 `json:"overtime_threshold,omitempty"`
}

// SlotInput carries one slot of an UpsertScheduleRequest. Multiplier is a
// decimal string so precision survives the JSON round trip; empty means
// "use the type default".
type SlotInput struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Type       string `json:"type"`
	Multiplier string `json:"multiplier,omitempty"`
	Label      string `json:"label,omitempty"`
}

type UpsertScheduleRequest struct {
	WorkCycleID   string      `json:"-"`
	Label         string      `json:"label"`
	Abbreviation  string      `json:"abbreviation"`
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	TotalHours    float64     `json:"total_hours"`
	BreakDuration int         `json:"break_duration"`
	Slots         []SlotInput `json:"slots"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be HH:MM",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be HH:MM",
		})
	}

	for i, slot := range r.Slots {
		field := "slots[" + validator.Itoa(i) + "]"
		if !validator.IsValidClockTime(slot.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".start_time",
				Message: "start_time must be HH:MM",
			})
		}
		if !validator.IsValidClockTime(slot.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be HH:MM",
			})
		}
		if _, err := ParseSlotType(slot.Type); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".type",
				Message: "unknown slot type: " + slot.Type,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkCycleFilter struct {
	Search string
	Page   int
	Limit  int
}

type WorkCycleResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Abbreviation      string            `json:"abbreviation"`
	Description       *string           `json:"description,omitempty"`
	CycleType         string            `json:"cycle_type"`
	CycleDays         int               `json:"cycle_days"`
	WeeklyHours       float64           `json:"weekly_hours"`
	OvertimeThreshold float64           `json:"overtime_threshold"`
	Schedule          *ScheduleResponse `json:"schedule,omitempty"`
}

type ScheduleResponse struct {
	ID            string         `json:"id"`
	Label         string         `json:"label"`
	Abbreviation  string         `json:"abbreviation"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	TotalHours    float64        `json:"total_hours"`
	BreakDuration int            `json:"break_duration"`
	Slots         []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	ID         string `json:"id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Type       string `json:"type"`
	Multiplier string `json:"multiplier"`
	Label      string `json:"label,omitempty"`
	Position   int    `json:"position"`
}
