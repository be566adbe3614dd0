package timesheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
)

// All interval math runs on a minute-of-day number line: 0..1439 for plain
// intervals, extended past 1440 when a span wraps midnight. Only whole
// minutes are used; hours become floating point at the very end.

const minutesPerDay = 1440

// parseClock converts "HH:MM" to minutes since midnight. Schedule data is
// not validated upstream, so parse defensively.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", timesheet.ErrMalformedTime, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", timesheet.ErrMalformedTime, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", timesheet.ErrMalformedTime, s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", timesheet.ErrMalformedTime, s)
	}

	return hours*60 + minutes, nil
}

// normalizeSpan extends the end past midnight when it is numerically at or
// before the start.
func normalizeSpan(start, end int) (int, int) {
	if end <= start {
		end += minutesPerDay
	}
	return start, end
}

// overlap returns the length of the intersection of [aStart, aEnd) and
// [bStart, bEnd), or 0 when they do not intersect.
func overlap(aStart, aEnd, bStart, bEnd int) int {
	o := min(aEnd, bEnd) - max(aStart, bStart)
	if o < 0 {
		return 0
	}
	return o
}

// formatClock renders a minute offset back to "H:MM". Offsets past
// midnight keep their extended hour (e.g. 1530 -> "25:30") so the audit
// trail stays unambiguous for wrapped shifts.
func formatClock(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

func minutesToHours(m int) float64 {
	return float64(m) / 60
}
