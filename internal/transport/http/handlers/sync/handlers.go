package synchandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"cutiplan/internal/cloud"
	"cutiplan/internal/domain/planner"
	"cutiplan/internal/middleware"
	"cutiplan/internal/transport/http/api"
)

// Handler exposes the simulated cloud backup. Push sends the local
// document up; pull replaces the local document with the cloud copy.
type Handler struct {
	Cloud   *cloud.Service
	Service *planner.Service
	Secret  string
}

func NewHandler(cloudSvc *cloud.Service, service *planner.Service, secret string) *Handler {
	return &Handler{Cloud: cloudSvc, Service: service, Secret: secret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/sync", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/push", h.handlePush)
		r.Post("/pull", h.handlePull)
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	profile, token, err := h.Cloud.Login(r.Context())
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "login_failed", "simulated login failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"profile": profile, "token": token}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePush(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	data, err := h.Service.Data(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "push_failed", "failed to load plan", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Cloud.Save(r.Context(), userID, data); err != nil {
		api.Fail(w, http.StatusBadGateway, "push_failed", "simulated save failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "pushed"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePull(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	remote, found, err := h.Cloud.Fetch(r.Context(), userID)
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "pull_failed", "simulated fetch failed", middleware.GetRequestID(r.Context()))
		return
	}
	if !found {
		api.Fail(w, http.StatusNotFound, "no_cloud_copy", "nothing has been pushed for this user", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Service.Replace(r.Context(), remote)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "pull_failed", "failed to replace plan", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) sessionUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session token required", middleware.GetRequestID(r.Context()))
		return "", false
	}
	claims, err := cloud.ParseToken(h.Secret, token)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid session token", middleware.GetRequestID(r.Context()))
		return "", false
	}
	return claims.UserID, true
}
