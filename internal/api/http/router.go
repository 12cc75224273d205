package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"surfjobs-backend/internal/metrics"
	"surfjobs-backend/internal/security"
)

// RouterDeps carries everything the HTTP surface is built from.
type RouterDeps struct {
	Applications *ApplicationHandler
	Tokens       security.TokenManager
	DB           Pinger
	Metrics      *metrics.Collector
	Log          *slog.Logger
}

// NewRouter registers every route. Route names key into config.RouteSecurityConfig.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware)
		router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet).Name("metrics")
	}
	router.Use(NewAuthMiddleware(deps.Tokens, deps.Log).Handler)

	router.HandleFunc("/healthz", HealthHandler(deps.DB, deps.Log)).Methods(http.MethodGet).Name("healthz")

	api := router.PathPrefix("/api/v1").Subrouter()
	h := deps.Applications
	api.HandleFunc("/jobs/{jobID}/applications", h.Create).Methods(http.MethodPost).Name("applications.create")
	api.HandleFunc("/jobs/{jobID}/applications/me", h.HasApplied).Methods(http.MethodGet).Name("applications.has_applied")
	api.HandleFunc("/me/applications", h.ListMine).Methods(http.MethodGet).Name("applications.mine")
	api.HandleFunc("/organization/applications", h.ListForOrganization).Methods(http.MethodGet).Name("applications.organization")
	api.HandleFunc("/applications/{id}", h.Get).Methods(http.MethodGet).Name("applications.get")
	api.HandleFunc("/applications/{id}/status", h.UpdateStatus).Methods(http.MethodPatch).Name("applications.update_status")

	return router
}
