package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gta-labs/gta-backend-go/internal/domain/workcycle"
	"github.com/gta-labs/gta-backend-go/internal/handler/http/response"
)

type WorkCycleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpsertSchedule(w http.ResponseWriter, r *http.Request)
}

type workCycleHandlerImpl struct {
	workCycleService workcycle.WorkCycleService
}

func NewWorkCycleHandler(workCycleService workcycle.WorkCycleService) WorkCycleHandler {
	return &workCycleHandlerImpl{workCycleService: workCycleService}
}

// Create implements WorkCycleHandler.
func (h *workCycleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workcycle.CreateWorkCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workCycleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work cycle created", result)
}

// Get implements WorkCycleHandler.
func (h *workCycleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.workCycleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkCycleHandler.
func (h *workCycleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := workcycle.WorkCycleFilter{
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	}

	results, total, err := h.workCycleService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, paginationMeta(page, limit, total))
}

// Update implements WorkCycleHandler.
func (h *workCycleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req workcycle.UpdateWorkCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workCycleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work cycle updated", result)
}

// Delete implements WorkCycleHandler.
func (h *workCycleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workCycleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work cycle deleted", nil)
}

// UpsertSchedule implements WorkCycleHandler.
func (h *workCycleHandlerImpl) UpsertSchedule(w http.ResponseWriter, r *http.Request) {
	var req workcycle.UpsertScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkCycleID = chi.URLParam(r, "id")

	result, err := h.workCycleService.UpsertSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved", result)
}
