package workcycle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseSlotType(t *testing.T) {
	cases := []struct {
		input string
		want  SlotType
	}{
		{"BREAK", SlotBreak},
		{"PAUSE", SlotBreak},
		{"pause", SlotBreak},
		{"OVERTIME", SlotOvertime},
		{"HEURE_SUPPLEMENTAIRE", SlotOvertime},
		{"SPECIAL", SlotSpecial},
		{"HEURE_SPECIALE", SlotSpecial},
		{"ENTRY_GRACE", SlotEntryGrace},
		{"TOLERANCE_ENTREE", SlotEntryGrace},
		{" standard ", SlotStandard},
		{"NORMAL", SlotStandard},
	}
	for _, c := range cases {
		got, err := ParseSlotType(c.input)
		assert.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}

func TestParseSlotType_Unknown(t *testing.T) {
	for _, input := range []string{"", "LUNCH", "BREAK_TIME", "123"} {
		_, err := ParseSlotType(input)
		assert.ErrorIs(t, err, ErrUnknownSlotType, "input %q", input)
	}
}

func TestSlotEffectiveMultiplier(t *testing.T) {
	// Explicit multiplier wins over the type default.
	explicit := Slot{Type: SlotOvertime, Multiplier: decimal.NewFromFloat(2.0)}
	assert.True(t, explicit.EffectiveMultiplier().Equal(decimal.NewFromFloat(2.0)))

	cases := []struct {
		slotType SlotType
		want     string
	}{
		{SlotBreak, "1"},
		{SlotEntryGrace, "1"},
		{SlotStandard, "1"},
		{SlotOvertime, "1.25"},
		{SlotSpecial, "1.5"},
	}
	for _, c := range cases {
		s := Slot{Type: c.slotType}
		want, _ := decimal.NewFromString(c.want)
		assert.True(t, s.EffectiveMultiplier().Equal(want), "type %s", c.slotType)
	}
}

func TestSlotDisplayLabel(t *testing.T) {
	assert.Equal(t, "Lunch", Slot{Type: SlotBreak, Label: "Lunch"}.DisplayLabel())
	assert.Equal(t, "BREAK", Slot{Type: SlotBreak}.DisplayLabel())
}
