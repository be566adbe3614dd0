package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gta-labs/gta-backend-go/internal/domain/overtime"
	"github.com/gta-labs/gta-backend-go/internal/handler/http/response"
	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

type OvertimeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.Service
}

func NewOvertimeHandler(overtimeService overtime.Service) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

// Get implements OvertimeHandler.
func (h *overtimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.overtimeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OvertimeHandler.
func (h *overtimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter, ok := parseOvertimeFilter(w, r)
	if !ok {
		return
	}
	filter.Page = page
	filter.Limit = limit

	results, total, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(page, limit, total))
}

// ListMy implements OvertimeHandler.
func (h *overtimeHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	employeeID := currentEmployeeID(r)
	if employeeID == "" {
		response.BadRequest(w, "Account has no employee record", nil)
		return
	}

	page, limit := parsePagination(r)

	filter, ok := parseOvertimeFilter(w, r)
	if !ok {
		return
	}
	filter.EmployeeID = &employeeID
	filter.Page = page
	filter.Limit = limit

	results, total, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(page, limit, total))
}

// Approve implements OvertimeHandler.
func (h *overtimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := overtime.ApproveRequest{
		ID:         chi.URLParam(r, "id"),
		ApproverID: currentUserID(r),
	}

	result, err := h.overtimeService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime approved", result)
}

// Reject implements OvertimeHandler.
func (h *overtimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req overtime.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ApproverID = currentUserID(r)

	result, err := h.overtimeService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime rejected", result)
}

func parseOvertimeFilter(w http.ResponseWriter, r *http.Request) (overtime.Filter, bool) {
	var filter overtime.Filter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := overtime.Status(status)
		filter.Status = &s
	}
	if from := r.URL.Query().Get("from"); from != "" {
		t, ok := validator.IsValidDate(from)
		if !ok {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return overtime.Filter{}, false
		}
		filter.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, ok := validator.IsValidDate(to)
		if !ok {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return overtime.Filter{}, false
		}
		filter.To = &t
	}

	return filter, true
}
