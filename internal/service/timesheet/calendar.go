package timesheet

import "time"

// IsSunday reports whether the working day falls on a Sunday. The date's
// own calendar day is used as-is (server-local, no timezone
// normalization).
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// NoHolidays is the default holiday calendar: it recognizes none. A real
// deployment plugs in a calendar backed by a holiday table or regional
// service.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(time.Time) bool { return false }

// StaticHolidays recognizes a fixed set of dates, keyed by calendar day.
type StaticHolidays struct {
	days map[string]struct{}
}

func NewStaticHolidays(dates ...time.Time) *StaticHolidays {
	days := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		days[d.Format(time.DateOnly)] = struct{}{}
	}
	return &StaticHolidays{days: days}
}

func (h *StaticHolidays) IsHoliday(date time.Time) bool {
	_, ok := h.days[date.Format(time.DateOnly)]
	return ok
}
