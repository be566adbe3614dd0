package workcycle

import (
	"context"

	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
)

type WorkCycleServiceImpl struct {
	workCycles workcycle.WorkCycleRepository
}

func NewWorkCycleService(workCycles workcycle.WorkCycleRepository) workcycle.WorkCycleService {
	return &WorkCycleServiceImpl{workCycles: workCycles}
}

// Create implements workcycle.WorkCycleService.
func (s *WorkCycleServiceImpl) Create(ctx context.Context, req workcycle.CreateWorkCycleRequest) (workcycle.WorkCycleResponse, error) {
	if err := req.Validate(); err != nil {
		return workcycle.WorkCycleResponse{}, err
	}

	created, err := s.workCycles.Create(ctx, workcycle.WorkCycle{
		Name:              req.Name,
		Abbreviation:      req.Abbreviation,
		Description:       req.Description,
		CycleType:         req.CycleType,
		CycleDays:         req.CycleDays,
		WeeklyHours:       req.WeeklyHours,
		OvertimeThreshold: req.OvertimeThreshold,
	})
	if err != nil {
		return workcycle.WorkCycleResponse{}, err
	}

	return toCycleResponse(created), nil
}

// Get implements workcycle.WorkCycleService.
func (s *WorkCycleServiceImpl) Get(ctx context.Context, id string) (workcycle.WorkCycleResponse, error) {
	cycle, err := s.workCycles.GetByID(ctx, id)
	if err != nil {
		return workcycle.WorkCycleResponse{}, err
	}

	return toCycleResponse(cycle), nil
}

// List implements workcycle.WorkCycleService.
func (s *WorkCycleServiceImpl) List(ctx context.Context, filter workcycle.WorkCycleFilter) ([]workcycle.WorkCycleResponse, int64, error) {
	cycles, total, err := s.workCycles.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]workcycle.WorkCycleResponse, 0, len(cycles))
	for _, cycle := range cycles {
		responses = append(responses, toCycleResponse(cycle))
	}

	return responses, total, nil
}

// Update implements workcycle.WorkCycleService.
func (s *WorkCycleServiceImpl) Update(ctx context.Context, req workcycle.UpdateWorkCycleRequest) (workcycle.WorkCycleResponse, error) {
	updated, err := s.workCycles.Update(ctx, req)
	if err != nil {
		return workcycle.WorkCycleResponse{}, err
	}

	return toCycleResponse(updated), nil
}

// Delete implements workcycle.WorkCycleService.
func (s *WorkCycleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.workCycles.SoftDelete(ctx, id)
}

// UpsertSchedule implements workcycle.WorkCycleService.
func (s *WorkCycleServiceImpl) UpsertSchedule(ctx context.Context, req workcycle.UpsertScheduleRequest) (workcycle.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return workcycle.ScheduleResponse{}, err
	}

	// The cycle must exist; the repository upsert would otherwise surface
	// a foreign key violation.
	if _, err := s.workCycles.GetByID(ctx, req.WorkCycleID); err != nil {
		return workcycle.ScheduleResponse{}, err
	}

	schedule, err := s.workCycles.UpsertSchedule(ctx, req)
	if err != nil {
		return workcycle.ScheduleResponse{}, err
	}

	return toScheduleResponse(schedule), nil
}

func toCycleResponse(cycle workcycle.WorkCycle) workcycle.WorkCycleResponse {
	resp := workcycle.WorkCycleResponse{
		ID:                cycle.ID,
		Name:              cycle.Name,
		Abbreviation:      cycle.Abbreviation,
		Description:       cycle.Description,
		CycleType:         cycle.CycleType,
		CycleDays:         cycle.CycleDays,
		WeeklyHours:       cycle.WeeklyHours,
		OvertimeThreshold: cycle.OvertimeThreshold,
	}

	if cycle.Schedule != nil {
		schedule := toScheduleResponse(*cycle.Schedule)
		resp.Schedule = &schedule
	}

	return resp
}

func toScheduleResponse(schedule workcycle.Schedule) workcycle.ScheduleResponse {
	resp := workcycle.ScheduleResponse{
		ID:            schedule.ID,
		Label:         schedule.Label,
		Abbreviation:  schedule.Abbreviation,
		StartTime:     schedule.StartTime,
		EndTime:       schedule.EndTime,
		TotalHours:    schedule.TotalHours,
		BreakDuration: schedule.BreakDuration,
		Slots:         []workcycle.SlotResponse{},
	}

	for _, slot := range schedule.Slots {
		resp.Slots = append(resp.Slots, workcycle.SlotResponse{
			ID:         slot.ID,
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
			Type:       string(slot.Type),
			Multiplier: slot.EffectiveMultiplier().String(),
			Label:      slot.Label,
			Position:   slot.Position,
		})
	}

	return resp
}
