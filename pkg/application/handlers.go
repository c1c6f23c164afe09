// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package application

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/internal/types"
	"github.com/ethosgate/access-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/projects/{slug}/apply", a.apply)
	mux.Get("/api/v0/projects/{slug}/applications", a.list)
	mux.Get("/api/v0/projects/{slug}/stats", a.stats)
	mux.Patch("/api/v0/applications/{id}", a.review)
}

type applyResponse struct {
	Status         string             `json:"status"`
	Application    *types.Application `json:"application,omitempty"`
	Reason         string             `json:"reason,omitempty"`
	CanReapplyAt   *time.Time         `json:"can_reapply_at,omitempty"`
	InviteToken    string             `json:"invite_token,omitempty"`
	TokenExpiresAt *time.Time         `json:"token_expires_at,omitempty"`
}

func (a *API) apply(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "application.API.apply")
	defer span.End()

	identityID, ok := authentication.GetUserID(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	slug := chi.URLParam(r, "slug")

	outcome, err := a.service.Apply(ctx, slug, identityID)
	if err != nil {
		switch {
		case errors.Is(err, ErrProjectNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrNoProfile):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			a.logger.Errorf("apply failed: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := applyResponse{
		Status:      outcome.Kind,
		Application: outcome.Application,
		Reason:      outcome.Reason,
	}
	if !outcome.CanReapplyAt.IsZero() {
		resp.CanReapplyAt = &outcome.CanReapplyAt
	}
	if outcome.Kind == OutcomeAccepted {
		resp.InviteToken = outcome.Token
		resp.TokenExpiresAt = &outcome.TokenExpiresAt
	}

	writeJSON(w, http.StatusOK, resp)
}

type reviewRequest struct {
	Status string `json:"status"`
}

type reviewResponse struct {
	Application    *types.Application `json:"application"`
	InviteToken    string             `json:"invite_token,omitempty"`
	TokenExpiresAt *time.Time         `json:"token_expires_at,omitempty"`
}

func (a *API) review(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "application.API.review")
	defer span.End()

	reviewer, ok := authentication.GetUserID(ctx)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	app, token, err := a.service.Review(ctx, chi.URLParam(r, "id"), req.Status, reviewer)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "application not found", http.StatusNotFound)
		default:
			a.logger.Errorf("review failed: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := reviewResponse{Application: app}
	if token != nil {
		resp.InviteToken = token.Token
		resp.TokenExpiresAt = &token.ExpiresAt
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "application.API.list")
	defer span.End()

	slug := chi.URLParam(r, "slug")
	status := r.URL.Query().Get("status")
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	applications, err := a.service.List(ctx, slug, status, page, size)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to list applications: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if applications == nil {
		applications = []*types.Application{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"applications": applications})
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "application.API.stats")
	defer span.End()

	stats, err := a.service.Stats(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to get stats: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
