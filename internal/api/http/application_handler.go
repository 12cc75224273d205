package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/ratelimit"
	"surfjobs-backend/internal/service"
)

const maxBodyBytes = 16 << 10

// ApplyLimit bounds how often one applicant may submit to one job.
type ApplyLimit struct {
	Limit  int
	Window time.Duration
}

// ApplicationHandler exposes the application lifecycle over HTTP.
type ApplicationHandler struct {
	lifecycle service.ApplicationLifecycleService
	queries   service.ApplicationQueryService
	limiter   ratelimit.Limiter
	limit     ApplyLimit
	log       *slog.Logger
}

func NewApplicationHandler(
	lifecycle service.ApplicationLifecycleService,
	queries service.ApplicationQueryService,
	limiter ratelimit.Limiter,
	limit ApplyLimit,
	log *slog.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		lifecycle: lifecycle,
		queries:   queries,
		limiter:   limiter,
		limit:     limit,
		log:       log,
	}
}

type createApplicationRequest struct {
	Message string `json:"message"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type hasAppliedResponse struct {
	HasApplied bool `json:"has_applied"`
}

type applicationsResponse struct {
	Applications any `json:"applications"`
}

// Create handles POST /api/v1/jobs/{jobID}/applications
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobID"]
	identity := IdentityFromContext(r.Context())

	var req createApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}

	if h.limiter != nil && identity.Authenticated() {
		key := "apply:" + jobID + ":" + identity.UserID
		if !h.limiter.Allow(r.Context(), key, h.limit.Limit, h.limit.Window) {
			// A resubmission is still reported as a conflict once the limit is hit.
			if applied, err := h.queries.HasApplied(r.Context(), jobID, identity); err == nil && applied {
				writeError(w, h.log, domain.ErrAlreadyApplied)
				return
			}
			h.log.Info("apply rate limit exceeded", "job_id", jobID, "user_id", identity.UserID)
			w.Header().Set("Retry-After", retryAfter(h.limit.Window))
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: errorBody{
				Code:    "rate_limited",
				Message: "too many applications, slow down",
			}})
			return
		}
	}

	app, err := h.lifecycle.CreateApplication(r.Context(), jobID, identity, req.Message)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// HasApplied handles GET /api/v1/jobs/{jobID}/applications/me
func (h *ApplicationHandler) HasApplied(w http.ResponseWriter, r *http.Request) {
	applied, err := h.queries.HasApplied(r.Context(), mux.Vars(r)["jobID"], IdentityFromContext(r.Context()))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, hasAppliedResponse{HasApplied: applied})
}

// ListMine handles GET /api/v1/me/applications
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListForApplicant(r.Context(), IdentityFromContext(r.Context()))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, applicationsResponse{Applications: items})
}

// ListForOrganization handles GET /api/v1/organization/applications
func (h *ApplicationHandler) ListForOrganization(w http.ResponseWriter, r *http.Request) {
	orgID := r.URL.Query().Get("organization_id")
	items, err := h.queries.ListForOwner(r.Context(), IdentityFromContext(r.Context()), orgID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, applicationsResponse{Applications: items})
}

// Get handles GET /api/v1/applications/{id}
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, err := h.queries.GetApplication(r.Context(), mux.Vars(r)["id"], IdentityFromContext(r.Context()))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// UpdateStatus handles PATCH /api/v1/applications/{id}/status
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	app, err := h.lifecycle.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, IdentityFromContext(r.Context()))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "request body must be valid JSON", err)
	}
	return nil
}

func retryAfter(window time.Duration) string {
	secs := int(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
