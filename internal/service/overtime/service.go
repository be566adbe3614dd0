package overtime

import (
	"context"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/overtime"
)

type OvertimeServiceImpl struct {
	overtimes overtime.Repository
}

func NewOvertimeService(overtimes overtime.Repository) overtime.Service {
	return &OvertimeServiceImpl{overtimes: overtimes}
}

// Get implements overtime.Service.
func (s *OvertimeServiceImpl) Get(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	rec, err := s.overtimes.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return toResponse(rec), nil
}

// List implements overtime.Service.
func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.Filter) ([]overtime.OvertimeResponse, int64, error) {
	records, total, err := s.overtimes.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]overtime.OvertimeResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return responses, total, nil
}

// Approve implements overtime.Service.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, req overtime.ApproveRequest) (overtime.OvertimeResponse, error) {
	rec, err := s.overtimes.UpdateStatus(ctx, req.ID, overtime.StatusApproved, req.ApproverID, nil)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return toResponse(rec), nil
}

// Reject implements overtime.Service.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, req overtime.RejectRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	rec, err := s.overtimes.UpdateStatus(ctx, req.ID, overtime.StatusRejected, req.ApproverID, &req.Reason)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return toResponse(rec), nil
}

func toResponse(rec overtime.Overtime) overtime.OvertimeResponse {
	resp := overtime.OvertimeResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		EmployeeName:    rec.EmployeeName,
		Date:            rec.Date.Format(time.DateOnly),
		Hours:           rec.Hours,
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
