// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package project manages the gated communities applicants apply to.
package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/internal/types"
)

// ErrSlugTaken means another project already owns the slug.
var ErrSlugTaken = errors.New("project slug already in use")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Create(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.Create")
	defer span.End()

	if err := p.Criteria.Validate(); err != nil {
		return nil, err
	}

	p.Active = true
	created, err := s.storage.CreateProject(ctx, p)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.GetBySlug")
	defer span.End()

	return s.storage.GetProjectBySlug(ctx, slug)
}

func (s *Service) List(ctx context.Context) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.List")
	defer span.End()

	return s.storage.ListProjects(ctx)
}

// Update applies the fields named in paths to the project identified by slug.
// Criteria changes affect future evaluations only; recorded decisions keep
// their snapshot.
func (s *Service) Update(ctx context.Context, slug string, p *types.Project, paths []string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.Update")
	defer span.End()

	current, err := s.storage.GetProjectBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		if path == "criteria" {
			if err := p.Criteria.Validate(); err != nil {
				return nil, err
			}
		}
	}

	p.ID = current.ID
	if err := s.storage.UpdateProject(ctx, p, paths); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.storage.GetProjectBySlug(ctx, slug)
}
