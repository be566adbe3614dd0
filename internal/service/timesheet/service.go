package timesheet

import (
	"github.com/gta-labs/gta-backend-go/internal/domain/notification"
	"github.com/gta-labs/gta-backend-go/internal/domain/overtime"
	"github.com/gta-labs/gta-backend-go/internal/domain/specialhour"
	"github.com/gta-labs/gta-backend-go/internal/domain/timesheet"
)

// TimesheetServiceImpl bundles the calculator and the materializer behind
// the timesheet.Service contract.
type TimesheetServiceImpl struct {
	*Calculator
	*Materializer
}

func NewTimesheetService(
	schedules timesheet.ScheduleResolver,
	holidays timesheet.HolidayCalendar,
	overtimes overtime.Repository,
	specialHours specialhour.Repository,
	notifications notification.Service,
) timesheet.Service {
	return &TimesheetServiceImpl{
		Calculator:   NewCalculator(schedules, holidays),
		Materializer: NewMaterializer(overtimes, specialHours, notifications),
	}
}
