package insightshandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cutiplan/internal/domain/planner"
	"cutiplan/internal/export"
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
	r.Get("/holidays", h.handleHolidays)
	r.Get("/stats", h.handleStats)
	r.Get("/suggestions", h.handleSuggestions)
	r.Get("/export", h.handleExport)
}

func (h *Handler) handleHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Service.ResolvedHolidays(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holidays_failed", "failed to resolve holidays", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, holidays, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "stats_failed", "failed to compute stats", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.Service.Suggestions(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "suggestions_failed", "failed to compute suggestions", middleware.GetRequestID(r.Context()))
		return
	}
	if suggestions == nil {
		suggestions = []planner.Suggestion{}
	}
	api.Success(w, suggestions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.Data(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to load plan", middleware.GetRequestID(r.Context()))
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="leave-plan.csv"`)
		if err := export.WriteCSV(w, data.Leaves); err != nil {
			api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to write csv", middleware.GetRequestID(r.Context()))
		}
	case "pdf":
		year := time.Now().Year()
		stats := planner.YearlyStats(data.Leaves, year)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="leave-plan.pdf"`)
		if err := export.WritePDF(w, data, stats, year); err != nil {
			api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to write pdf", middleware.GetRequestID(r.Context()))
		}
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_format", "format must be csv or pdf", middleware.GetRequestID(r.Context()))
	}
}
