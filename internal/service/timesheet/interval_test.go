package timesheet

import (
	"testing"

	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"08:30", 510},
		{"17:00", 1020},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := parseClock(c.input)
		assert.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, input := range []string{"", "8h30", "24:00", "12:60", "12", "a:b", "-1:00", "12:30:00"} {
		_, err := parseClock(input)
		assert.ErrorIs(t, err, timesheet.ErrMalformedTime, "input %q", input)
	}
}

func TestNormalizeSpan(t *testing.T) {
	start, end := normalizeSpan(480, 1020)
	assert.Equal(t, 480, start)
	assert.Equal(t, 1020, end)

	// 22:00-06:00 wraps past midnight.
	start, end = normalizeSpan(1320, 360)
	assert.Equal(t, 1320, start)
	assert.Equal(t, 1800, end)

	// Equal start and end also wraps (24h window).
	start, end = normalizeSpan(480, 480)
	assert.Equal(t, 480, start)
	assert.Equal(t, 1920, end)
}

func TestOverlap(t *testing.T) {
	cases := []struct {
		name   string
		aStart int
		aEnd   int
		bStart int
		bEnd   int
		want   int
	}{
		{"contained", 480, 1020, 720, 780, 60},
		{"partial", 480, 1140, 1020, 1200, 120},
		{"disjoint", 480, 600, 720, 780, 0},
		{"touching", 480, 720, 720, 780, 0},
		{"identical", 480, 1020, 480, 1020, 540},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, overlap(c.aStart, c.aEnd, c.bStart, c.bEnd), c.name)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "8:05", formatClock(485))
	assert.Equal(t, "17:00", formatClock(1020))
	// Wrapped offsets keep the extended hour.
	assert.Equal(t, "25:30", formatClock(1530))
}
