package timeentry

import "context"

type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (EntryResponse, error)

	// ClockOut closes the day's entry and runs the work-time decomposition
	// engine plus the derived-record materializer. Calculation failures
	// are logged, never propagated: the punch itself always succeeds.
	ClockOut(ctx context.Context, req ClockOutRequest) (EntryResponse, error)

	Get(ctx context.Context, id string) (EntryResponse, error)
	List(ctx context.Context, filter Filter) ([]EntryResponse, int64, error)

	// Validate lists entries in the range that a payroll run cannot
	// consume: missing clock-out, clock-out before clock-in.
	Validate(ctx context.Context, filter Filter) ([]ValidationIssue, error)
}
