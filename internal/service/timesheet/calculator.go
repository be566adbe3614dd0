package timesheet

import (
	"context"
	"fmt"
	"math"

	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
)

// Calculator decomposes a worked interval against the employee's schedule.
// It is pure apart from the schedule read: same inputs, same output.
type Calculator struct {
	schedules timesheet.ScheduleResolver
	holidays  timesheet.HolidayCalendar
}

func NewCalculator(schedules timesheet.ScheduleResolver, holidays timesheet.HolidayCalendar) *Calculator {
	if holidays == nil {
		holidays = NoHolidays{}
	}
	return &Calculator{
		schedules: schedules,
		holidays:  holidays,
	}
}

// bucketState carries the minute pools through the slot fold. Values, not
// pointers: each slot application returns a new state, so earlier slots
// can never be aliased by later ones.
type bucketState struct {
	normal   int
	overtime int
	special  int
	brk      int
}

// applySlot reallocates minutes for one slot. withinMin is the part of the
// slot overlap that also falls inside the scheduled window, outsideMin the
// rest. All subtractions floor at zero: a slot never drives a pool
// negative, excess is simply not removed.
func (s bucketState) applySlot(slotType workcycle.SlotType, overlapMin, withinMin, outsideMin int) bucketState {
	switch slotType {
	case workcycle.SlotBreak:
		s.brk += overlapMin
		s.normal -= min(withinMin, s.normal)
		s.overtime -= min(outsideMin, s.overtime)

	case workcycle.SlotOvertime:
		// Reclassify in-window minutes the slot marks as overtime. The
		// out-of-window part is already in the overtime pool from the
		// base window comparison; moving it again would double count.
		moved := min(withinMin, s.normal)
		s.normal -= moved
		s.overtime += moved

	case workcycle.SlotSpecial:
		s.special += overlapMin
		s.normal -= min(withinMin, s.normal)
		s.overtime -= min(outsideMin, s.overtime)

	default:
		// ENTRY_GRACE and STANDARD: minutes stay where the base window
		// comparison put them.
	}
	return s
}

// CalculateHoursWorked implements timesheet.Service.
func (c *Calculator) CalculateHoursWorked(ctx context.Context, entry timesheet.WorkedInterval) (timesheet.CalculatedHours, error) {
	if !entry.ClockOut.After(entry.ClockIn) {
		return timesheet.CalculatedHours{}, timesheet.ErrClockOutBeforeClockIn
	}

	totalMinutes := int(math.Round(entry.ClockOut.Sub(entry.ClockIn).Minutes()))
	sunday := IsSunday(entry.Date)
	holiday := c.holidays.IsHoliday(entry.Date)

	schedule, err := c.schedules.GetEffectiveSchedule(ctx, entry.EmployeeID)
	if err != nil {
		return timesheet.CalculatedHours{}, fmt.Errorf("resolve schedule: %w", err)
	}

	// No resolvable schedule: the whole span is normal time, no
	// overtime/special categorization regardless of actual hours.
	if schedule == nil {
		totalHours := minutesToHours(totalMinutes)
		breakdown := timesheet.Breakdown{Normal: totalHours}
		if sunday {
			breakdown.Sunday = totalHours
		}
		if holiday {
			breakdown.Holiday = totalHours
		}
		return timesheet.CalculatedHours{
			NormalHours:   totalHours,
			OvertimeHours: 0,
			SpecialHours:  breakdown.Sunday + breakdown.Holiday,
			Breakdown:     breakdown,
			Ranges:        []timesheet.SlotRange{},
		}, nil
	}

	// Put the worked span and the scheduled window on a shared
	// minute-of-day line. A clock-out time-of-day numerically before
	// clock-in means the shift crossed midnight.
	workStart := entry.ClockIn.Hour()*60 + entry.ClockIn.Minute()
	workEnd := entry.ClockOut.Hour()*60 + entry.ClockOut.Minute()
	if workEnd < workStart {
		workEnd += minutesPerDay
	}

	schedStart, err := parseClock(schedule.StartTime)
	if err != nil {
		return timesheet.CalculatedHours{}, fmt.Errorf("schedule start: %w", err)
	}
	schedEnd, err := parseClock(schedule.EndTime)
	if err != nil {
		return timesheet.CalculatedHours{}, fmt.Errorf("schedule end: %w", err)
	}
	schedStart, schedEnd = normalizeSpan(schedStart, schedEnd)

	st := bucketState{}
	st.normal = overlap(workStart, workEnd, schedStart, schedEnd)
	if workStart < schedStart {
		st.overtime += min(schedStart, workEnd) - workStart
	}
	if workEnd > schedEnd {
		st.overtime += workEnd - max(schedEnd, workStart)
	}

	ranges := []timesheet.SlotRange{}
	for _, slot := range schedule.Slots {
		slotStart, err := parseClock(slot.StartTime)
		if err != nil {
			return timesheet.CalculatedHours{}, fmt.Errorf("slot %q start: %w", slot.DisplayLabel(), err)
		}
		slotEnd, err := parseClock(slot.EndTime)
		if err != nil {
			return timesheet.CalculatedHours{}, fmt.Errorf("slot %q end: %w", slot.DisplayLabel(), err)
		}
		slotStart, slotEnd = normalizeSpan(slotStart, slotEnd)

		overlapMin := overlap(workStart, workEnd, slotStart, slotEnd)
		if overlapMin <= 0 {
			continue
		}

		interStart := max(workStart, slotStart)
		interEnd := min(workEnd, slotEnd)
		withinMin := overlap(interStart, interEnd, schedStart, schedEnd)
		outsideMin := overlapMin - withinMin

		// The audit trail entry is emitted for every overlapping slot,
		// whether or not the slot moves minutes between pools.
		ranges = append(ranges, timesheet.SlotRange{
			Start:      formatClock(interStart),
			End:        formatClock(interEnd),
			Hours:      minutesToHours(overlapMin),
			Label:      slot.DisplayLabel(),
			Type:       slot.Type,
			Multiplier: slot.EffectiveMultiplier(),
		})

		st = st.applySlot(slot.Type, overlapMin, withinMin, outsideMin)
	}

	breakdown := timesheet.Breakdown{
		Normal:   minutesToHours(st.normal),
		Overtime: minutesToHours(st.overtime),
		Other:    minutesToHours(st.brk),
	}

	// Day classification overrides the whole day: the full worked
	// duration becomes Sunday/holiday premium and the normal bucket is
	// reset so the same minutes are not paid twice.
	if sunday {
		breakdown.Sunday = minutesToHours(totalMinutes)
		breakdown.Normal = 0
	}
	if holiday {
		breakdown.Holiday = minutesToHours(totalMinutes)
		breakdown.Normal = 0
	}

	return timesheet.CalculatedHours{
		NormalHours:   breakdown.Normal,
		OvertimeHours: breakdown.Overtime,
		SpecialHours:  minutesToHours(st.special) + breakdown.Sunday + breakdown.Holiday,
		Breakdown:     breakdown,
		Ranges:        ranges,
	}, nil
}
