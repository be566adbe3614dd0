package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gta-labs/gta-backend-go/internal/domain/specialhour"
	"github.com/gta-labs/gta-backend-go/internal/handler/http/response"
	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

type SpecialHourHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type specialHourHandlerImpl struct {
	specialHourService specialhour.Service
}

func NewSpecialHourHandler(specialHourService specialhour.Service) SpecialHourHandler {
	return &specialHourHandlerImpl{specialHourService: specialHourService}
}

// Get implements SpecialHourHandler.
func (h *specialHourHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.specialHourService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SpecialHourHandler.
func (h *specialHourHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter, ok := parseSpecialHourFilter(w, r)
	if !ok {
		return
	}
	filter.Page = page
	filter.Limit = limit

	results, total, err := h.specialHourService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(page, limit, total))
}

// ListMy implements SpecialHourHandler.
func (h *specialHourHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	employeeID := currentEmployeeID(r)
	if employeeID == "" {
		response.BadRequest(w, "Account has no employee record", nil)
		return
	}

	page, limit := parsePagination(r)

	filter, ok := parseSpecialHourFilter(w, r)
	if !ok {
		return
	}
	filter.EmployeeID = &employeeID
	filter.Page = page
	filter.Limit = limit

	results, total, err := h.specialHourService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(page, limit, total))
}

// Approve implements SpecialHourHandler.
func (h *specialHourHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := specialhour.ApproveRequest{
		ID:         chi.URLParam(r, "id"),
		ApproverID: currentUserID(r),
	}

	result, err := h.specialHourService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special hours approved", result)
}

// Reject implements SpecialHourHandler.
func (h *specialHourHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req specialhour.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ApproverID = currentUserID(r)

	result, err := h.specialHourService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special hours rejected", result)
}

func parseSpecialHourFilter(w http.ResponseWriter, r *http.Request) (specialhour.Filter, bool) {
	var filter specialhour.Filter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := specialhour.Status(status)
		filter.Status = &s
	}
	if hourType := r.URL.Query().Get("hour_type"); hourType != "" {
		t := specialhour.HourType(hourType)
		filter.HourType = &t
	}
	if from := r.URL.Query().Get("from"); from != "" {
		t, ok := validator.IsValidDate(from)
		if !ok {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return specialhour.Filter{}, false
		}
		filter.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, ok := validator.IsValidDate(to)
		if !ok {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return specialhour.Filter{}, false
		}
		filter.To = &t
	}

	return filter, true
}
