package workcycle

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WorkCycle groups employees under a shared working pattern. Each cycle
// owns at most one Schedule describing the expected daily time window.
type WorkCycle struct {
	ID                string
	Name              string
	Abbreviation      string
	Description       *string
	CycleType         string // WEEKLY, MONTHLY
	CycleDays         int
	WeeklyHours       float64
	OvertimeThreshold float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time

	Schedule *Schedule
}

// Schedule is the expected daily working window of a cycle. StartTime and
// EndTime are wall-clock "HH:MM" strings; an EndTime numerically at or
// before StartTime means the window wraps past midnight.
type Schedule struct {
	ID            string
	WorkCycleID   string
	Label         string
	Abbreviation  string
	StartTime     string
	EndTime       string
	TotalHours    float64
	BreakDuration int // minutes
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Slots in schedule-defined processing order. Slots may overlap;
	// processing order is significant and must stay stable.
	Slots []Slot
}

// Slot is a typed sub-interval of a schedule. End at or before start means
// the slot wraps past midnight.
type Slot struct {
	ID         string
	ScheduleID string
	StartTime  string
	EndTime    string
	Type       SlotType
	Multiplier decimal.Decimal // zero means "use the type default"
	Label      string
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayLabel returns the slot label, falling back to the type name.
func (s Slot) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return string(s.Type)
}

// EffectiveMultiplier returns the explicitly configured pay multiplier, or
// the type default when none is set.
func (s Slot) EffectiveMultiplier() decimal.Decimal {
	if s.Multiplier.IsPositive() {
		return s.Multiplier
	}
	return s.Type.DefaultMultiplier()
}

type SlotType string

const (
	SlotBreak      SlotType = "BREAK"
	SlotOvertime   SlotType = "OVERTIME"
	SlotSpecial    SlotType = "SPECIAL"
	SlotEntryGrace SlotType = "ENTRY_GRACE"
	SlotStandard   SlotType = "STANDARD"
)

var (
	multiplierOvertime = decimal.NewFromFloat(1.25)
	multiplierSpecial  = decimal.NewFromFloat(1.5)
	multiplierDefault  = decimal.NewFromInt(1)
)

// DefaultMultiplier returns the pay factor applied when a slot carries no
// explicit multiplier.
func (t SlotType) DefaultMultiplier() decimal.Decimal {
	switch t {
	case SlotOvertime:
		return multiplierOvertime
	case SlotSpecial:
		return multiplierSpecial
	default:
		return multiplierDefault
	}
}

// slotTypeAliases maps the spellings found in legacy schedule data (both
// the localized and the English variants) onto the closed enum.
var slotTypeAliases = map[string]SlotType{
	"BREAK":                SlotBreak,
	"PAUSE":                SlotBreak,
	"OVERTIME":             SlotOvertime,
	"HEURE_SUPPLEMENTAIRE": SlotOvertime,
	"SPECIAL":              SlotSpecial,
	"HEURE_SPECIALE":       SlotSpecial,
	"ENTRY_GRACE":          SlotEntryGrace,
	"TOLERANCE_ENTREE":     SlotEntryGrace,
	"STANDARD":             SlotStandard,
	"NORMAL":               SlotStandard,
}

// ParseSlotType normalizes a stored slot type string. Unrecognized values
// are an error rather than a silent default.
func ParseSlotType(s string) (SlotType, error) {
	if t, ok := slotTypeAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", ErrUnknownSlotType
}
