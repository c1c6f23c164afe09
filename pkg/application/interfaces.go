// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package application

import (
	"context"

	"github.com/ethosgate/access-service/internal/types"
)

// StorageInterface is the subset of the storage layer the application package needs.
type StorageInterface interface {
	GetProjectBySlug(ctx context.Context, slug string) (*types.Project, error)
	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	GetApplicationByProjectAndIdentity(ctx context.Context, projectID, identityID string) (*types.Application, error)
	UpsertApplication(ctx context.Context, a *types.Application) (*types.Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status, reviewedBy string) (*types.Application, error)
	ListApplicationsByProject(ctx context.Context, projectID, status string, page, size int64) ([]*types.Application, error)
	GetApplicationStats(ctx context.Context, projectID string) (*types.ApplicationStats, error)
}

// ReputationInterface fetches a fresh reputation snapshot for an identity.
type ReputationInterface interface {
	GetProfile(ctx context.Context, identityID string) (*types.ReputationProfile, error)
}

// InviteIssuerInterface mints or reuses invite tokens for accepted applications.
type InviteIssuerInterface interface {
	EnsureActiveToken(ctx context.Context, applicationID string) (*types.InviteToken, error)
}

type ServiceInterface interface {
	Apply(ctx context.Context, slug, identityID string) (*Outcome, error)
	Review(ctx context.Context, id, status, reviewedBy string) (*types.Application, *types.InviteToken, error)
	List(ctx context.Context, slug, status string, page, size int64) ([]*types.Application, error)
	Stats(ctx context.Context, slug string) (*types.ApplicationStats, error)
}
