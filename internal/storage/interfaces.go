// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/ethosgate/access-service/internal/types"
)

type StorageInterface interface {
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*types.Project, error)
	ListProjects(ctx context.Context) ([]*types.Project, error)
	UpdateProject(ctx context.Context, p *types.Project, paths []string) error

	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	GetApplicationByProjectAndIdentity(ctx context.Context, projectID, identityID string) (*types.Application, error)
	UpsertApplication(ctx context.Context, a *types.Application) (*types.Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status, reviewedBy string) (*types.Application, error)
	ListApplicationsByProject(ctx context.Context, projectID, status string, page, size int64) ([]*types.Application, error)
	GetApplicationStats(ctx context.Context, projectID string) (*types.ApplicationStats, error)

	CreateInviteToken(ctx context.Context, t *types.InviteToken) (*types.InviteToken, error)
	GetInviteToken(ctx context.Context, token string) (*types.InviteToken, error)
	FindActiveTokenForApplication(ctx context.Context, applicationID string) (*types.InviteToken, error)
	RedeemToken(ctx context.Context, token, origin string) (bool, error)
}
