package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gta-labs/gta-backend-go/internal/domain/auth"
	"github.com/gta-labs/gta-backend-go/internal/domain/timeentry"
	"github.com/gta-labs/gta-backend-go/internal/handler/http/response"
	"github.com/gta-labs/gta-backend-go/internal/pkg/validator"
)

type TimeEntryHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	entryService timeentry.Service
}

func NewTimeEntryHandler(entryService timeentry.Service) TimeEntryHandler {
	return &timeEntryHandlerImpl{entryService: entryService}
}

// ClockIn implements TimeEntryHandler. Employees punch for themselves;
// managers and admins may punch on behalf of any employee.
func (h *timeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := punchTarget(w, r)
	if !ok {
		return
	}

	var req timeentry.ClockInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.EmployeeID = employeeID

	result, err := h.entryService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := punchTarget(w, r)
	if !ok {
		return
	}

	var req timeentry.ClockOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.EmployeeID = employeeID

	result, err := h.entryService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Get implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.entryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter, ok := parseEntryFilter(w, r)
	if !ok {
		return
	}
	filter.Page = page
	filter.Limit = limit

	results, total, err := h.entryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(page, limit, total))
}

// ListMy implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	employeeID := currentEmployeeID(r)
	if employeeID == "" {
		response.BadRequest(w, "Account has no employee record", nil)
		return
	}

	page, limit := parsePagination(r)

	filter, ok := parseEntryFilter(w, r)
	if !ok {
		return
	}
	filter.EmployeeID = &employeeID
	filter.Page = page
	filter.Limit = limit

	results, total, err := h.entryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(page, limit, total))
}

// Validate implements TimeEntryHandler.
func (h *timeEntryHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseEntryFilter(w, r)
	if !ok {
		return
	}

	issues, err := h.entryService.Validate(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, issues)
}

// punchTarget resolves the employee a punch applies to and enforces that
// plain employees only punch for themselves.
func punchTarget(w http.ResponseWriter, r *http.Request) (string, bool) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return "", false
	}

	if currentRole(r) == auth.RoleEmployee && employeeID != currentEmployeeID(r) {
		response.Forbidden(w, "You can only punch for yourself")
		return "", false
	}

	return employeeID, true
}

func parseEntryFilter(w http.ResponseWriter, r *http.Request) (timeentry.Filter, bool) {
	var filter timeentry.Filter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := timeentry.Status(status)
		filter.Status = &s
	}
	if from := r.URL.Query().Get("from"); from != "" {
		t, ok := validator.IsValidDate(from)
		if !ok {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return timeentry.Filter{}, false
		}
		filter.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, ok := validator.IsValidDate(to)
		if !ok {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return timeentry.Filter{}, false
		}
		filter.To = &t
	}

	return filter, true
}
