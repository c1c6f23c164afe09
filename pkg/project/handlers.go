// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/internal/types"
	"github.com/ethosgate/access-service/pkg/criteria"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

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
	mux.Post("/api/v0/projects", a.create)
	mux.Get("/api/v0/projects", a.list)
	mux.Get("/api/v0/projects/{slug}", a.get)
	mux.Patch("/api/v0/projects/{slug}", a.update)
}

type createProjectRequest struct {
	Name            string             `json:"name" validate:"required,min=3,max=100"`
	Slug            string             `json:"slug" validate:"required,min=3,max=50,slug"`
	Description     string             `json:"description" validate:"max=2000"`
	Benefits        string             `json:"benefits" validate:"max=2000"`
	DestinationURL  string             `json:"destination_url" validate:"required,url,startswith=https://"`
	DestinationType string             `json:"destination_type" validate:"required,oneof=discord beta"`
	CriteriaPreset  string             `json:"criteria_preset"`
	Criteria        *criteria.Criteria `json:"criteria"`
	ManualReview    bool               `json:"manual_review"`
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.create")
	defer span.End()

	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Explicit criteria win over a preset name.
	var c criteria.Criteria
	if req.Criteria != nil {
		c = *req.Criteria
	} else {
		c = criteria.ResolvePreset(req.CriteriaPreset)
	}

	p := &types.Project{
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     req.Description,
		Benefits:        req.Benefits,
		DestinationURL:  req.DestinationURL,
		DestinationType: req.DestinationType,
		Criteria:        c,
		ManualReview:    req.ManualReview,
	}

	created, err := a.service.Create(ctx, p)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlugTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			a.logger.Errorf("failed to create project: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// publicProject is the applicant facing subset of a project.
type publicProject struct {
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Benefits        string   `json:"benefits,omitempty"`
	DestinationType string   `json:"destination_type"`
	Requirements    []string `json:"requirements"`
	EstimatedRate   int      `json:"estimated_pass_rate"`
	Active          bool     `json:"active"`
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.get")
	defer span.End()

	p, err := a.service.GetBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to get project: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, publicProject{
		Slug:            p.Slug,
		Name:            p.Name,
		Description:     p.Description,
		Benefits:        p.Benefits,
		DestinationType: p.DestinationType,
		Requirements:    p.Criteria.Describe(),
		EstimatedRate:   p.Criteria.EstimatePassRate(),
		Active:          p.Active,
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.list")
	defer span.End()

	projects, err := a.service.List(ctx)
	if err != nil {
		a.logger.Errorf("failed to list projects: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if projects == nil {
		projects = []*types.Project{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

type updateProjectRequest struct {
	Name            *string            `json:"name" validate:"omitempty,min=3,max=100"`
	Description     *string            `json:"description" validate:"omitempty,max=2000"`
	Benefits        *string            `json:"benefits" validate:"omitempty,max=2000"`
	DestinationURL  *string            `json:"destination_url" validate:"omitempty,url,startswith=https://"`
	DestinationType *string            `json:"destination_type" validate:"omitempty,oneof=discord beta"`
	Criteria        *criteria.Criteria `json:"criteria"`
	ManualReview    *bool              `json:"manual_review"`
	Active          *bool              `json:"active"`
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "project.API.update")
	defer span.End()

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var p types.Project
	var paths []string
	if req.Name != nil {
		p.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Description != nil {
		p.Description = *req.Description
		paths = append(paths, "description")
	}
	if req.Benefits != nil {
		p.Benefits = *req.Benefits
		paths = append(paths, "benefits")
	}
	if req.DestinationURL != nil {
		p.DestinationURL = *req.DestinationURL
		paths = append(paths, "destination_url")
	}
	if req.DestinationType != nil {
		p.DestinationType = *req.DestinationType
		paths = append(paths, "destination_type")
	}
	if req.Criteria != nil {
		p.Criteria = *req.Criteria
		paths = append(paths, "criteria")
	}
	if req.ManualReview != nil {
		p.ManualReview = *req.ManualReview
		paths = append(paths, "manual_review")
	}
	if req.Active != nil {
		p.Active = *req.Active
		paths = append(paths, "active")
	}

	updated, err := a.service.Update(ctx, chi.URLParam(r, "slug"), &p, paths)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "project not found", http.StatusNotFound)
		case isValidationError(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			a.logger.Errorf("failed to update project: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func isValidationError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
