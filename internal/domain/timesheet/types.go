package timesheet

import (
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
	"github.com/shopspring/decimal"
)

// WorkedInterval is one raw clock-in/clock-out pair for one working day.
// Date identifies the working day used for Sunday/holiday classification;
// for shifts wrapping midnight it is not necessarily the calendar day of
// the clock-out timestamp.
type WorkedInterval struct {
	EmployeeID string
	Date       time.Time
	ClockIn    time.Time
	ClockOut   time.Time
}

// Breakdown splits the worked duration by pay category, in decimal hours.
// NightShift is reserved and never populated by the engine.
type Breakdown struct {
	Normal     float64 `json:"normal"`
	Overtime   float64 `json:"overtime"`
	NightShift float64 `json:"night_shift"`
	Sunday     float64 `json:"sunday"`
	Holiday    float64 `json:"holiday"`
	Other      float64 `json:"other"`
}

// SlotRange records which schedule slot explains which minutes of the
// worked interval. One entry is emitted per slot with nonzero overlap,
// whether or not the slot moved minutes between buckets.
type SlotRange struct {
	Start      string             `json:"start"`
	End        string             `json:"end"`
	Hours      float64            `json:"hours"`
	Label      string             `json:"label"`
	Type       workcycle.SlotType `json:"type"`
	Multiplier decimal.Decimal    `json:"multiplier"`
}

// CalculatedHours is the engine output. Hour values are unrounded; rounding
// to two decimals is a presentation concern of the caller.
type CalculatedHours struct {
	NormalHours   float64     `json:"normal_hours"`
	OvertimeHours float64     `json:"overtime_hours"`
	SpecialHours  float64     `json:"special_hours"`
	Breakdown     Breakdown   `json:"breakdown"`
	Ranges        []SlotRange `json:"ranges"`
}
