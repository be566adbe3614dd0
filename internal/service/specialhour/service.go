package specialhour

import (
	"context"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/specialhour"
)

type SpecialHourServiceImpl struct {
	specialHours specialhour.Repository
}

func NewSpecialHourService(specialHours specialhour.Repository) specialhour.Service {
	return &SpecialHourServiceImpl{specialHours: specialHours}
}

// Get implements specialhour.Service.
func (s *SpecialHourServiceImpl) Get(ctx context.Context, id string) (specialhour.SpecialHourResponse, error) {
	rec, err := s.specialHours.GetByID(ctx, id)
	if err != nil {
		return specialhour.SpecialHourResponse{}, err
	}

	return toResponse(rec), nil
}

// List implements specialhour.Service.
func (s *SpecialHourServiceImpl) List(ctx context.Context, filter specialhour.Filter) ([]specialhour.SpecialHourResponse, int64, error) {
	records, total, err := s.specialHours.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]specialhour.SpecialHourResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return responses, total, nil
}

// Approve implements specialhour.Service.
func (s *SpecialHourServiceImpl) Approve(ctx context.Context, req specialhour.ApproveRequest) (specialhour.SpecialHourResponse, error) {
	rec, err := s.specialHours.UpdateStatus(ctx, req.ID, specialhour.StatusApproved, req.ApproverID, nil)
	if err != nil {
		return specialhour.SpecialHourResponse{}, err
	}

	return toResponse(rec), nil
}

// Reject implements specialhour.Service.
func (s *SpecialHourServiceImpl) Reject(ctx context.Context, req specialhour.RejectRequest) (specialhour.SpecialHourResponse, error) {
	if err := req.Validate(); err != nil {
		return specialhour.SpecialHourResponse{}, err
	}

	rec, err := s.specialHours.UpdateStatus(ctx, req.ID, specialhour.StatusRejected, req.ApproverID, &req.Reason)
	if err != nil {
		return specialhour.SpecialHourResponse{}, err
	}

	return toResponse(rec), nil
}

func toResponse(rec specialhour.SpecialHour) specialhour.SpecialHourResponse {
	resp := specialhour.SpecialHourResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		EmployeeName:    rec.EmployeeName,
		Date:            rec.Date.Format(time.DateOnly),
		Hours:           rec.Hours,
		HourType:        string(rec.HourType),
		Reason:          rec.Reason,
		Status:          string(rec.Status),
		ApprovedBy:      rec.ApprovedBy,
		RejectionReason: rec.RejectionReason,
	}

	if rec.ApprovedAt != nil {
		v := rec.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}

	return resp
}
