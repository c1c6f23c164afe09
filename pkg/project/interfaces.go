// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"

	"github.com/ethosgate/access-service/internal/types"
)

// StorageInterface is the subset of the storage layer the project package needs.
type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*types.Project, error)
	ListProjects(ctx context.Context) ([]*types.Project, error)
	UpdateProject(ctx context.Context, p *types.Project, paths []string) error
}

type ServiceInterface interface {
	Create(ctx context.Context, p *types.Project) (*types.Project, error)
	GetBySlug(ctx context.Context, slug string) (*types.Project, error)
	List(ctx context.Context) ([]*types.Project, error)
	Update(ctx context.Context, slug string, p *types.Project, paths []string) (*types.Project, error)
}
