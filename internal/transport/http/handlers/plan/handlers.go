package planhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cutiplan/internal/domain/planner"
	"cutiplan/internal/middleware"
	"cutiplan/internal/transport/http/api"
)

type Handler struct {
	Service *planner.Service
}

func NewHandler(service *planner.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/plan", func(r chi.Router) {
		r.Get("/", h.handleGetPlan)
		r.Get("/summary", h.handleSummary)
		r.Put("/entitlement", h.handleSetEntitlement)
		r.Put("/settings", h.handleUpdateSettings)
		r.Post("/leaves", h.handleSaveLeave)
		r.Delete("/leaves/{date}", h.handleDeleteLeave)
		r.Post("/holidays", h.handleSaveHoliday)
		r.Delete("/holidays/{date}", h.handleDeleteHoliday)
	})
}

func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.Data(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "plan_load_failed", "failed to load plan", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "summary_failed", "failed to compute summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetEntitlement(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Days int `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Service.SetEntitlement(r.Context(), payload.Days)
	if err != nil {
		failMutation(w, r, err, "entitlement_failed", "failed to update entitlement")
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload planner.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Service.UpdateSettings(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_failed", "failed to update settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveLeave(w http.ResponseWriter, r *http.Request) {
	var payload planner.LeaveEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Service.SaveLeave(r.Context(), payload)
	if err != nil {
		failMutation(w, r, err, "leave_save_failed", "failed to save leave")
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteLeave(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.DeleteLeave(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_delete_failed", "failed to delete leave", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveHoliday(w http.ResponseWriter, r *http.Request) {
	var payload planner.CustomHoliday
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Service.SaveHoliday(r.Context(), payload)
	if err != nil {
		failMutation(w, r, err, "holiday_save_failed", "failed to save holiday")
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.DeleteHoliday(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_delete_failed", "failed to delete holiday", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

// failMutation maps domain validation errors to 400 responses.
func failMutation(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, planner.ErrInvalidDate):
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", reqID)
	case errors.Is(err, planner.ErrInvalidLeaveType):
		api.Fail(w, http.StatusBadRequest, "invalid_leave_type", "unknown leave type", reqID)
	case errors.Is(err, planner.ErrEmptyName):
		api.Fail(w, http.StatusBadRequest, "empty_name", "holiday name must not be empty", reqID)
	case errors.Is(err, planner.ErrNegativeEntitlement):
		api.Fail(w, http.StatusBadRequest, "negative_entitlement", "entitlement must be non-negative", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, reqID)
	}
}
