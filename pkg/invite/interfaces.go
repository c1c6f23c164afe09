// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"context"

	"github.com/ethosgate/access-service/internal/types"
)

// StorageInterface is the subset of the storage layer the invite package needs.
type StorageInterface interface {
	CreateInviteToken(ctx context.Context, t *types.InviteToken) (*types.InviteToken, error)
	GetInviteToken(ctx context.Context, token string) (*types.InviteToken, error)
	FindActiveTokenForApplication(ctx context.Context, applicationID string) (*types.InviteToken, error)
	RedeemToken(ctx context.Context, token, origin string) (bool, error)
	GetApplicationByID(ctx context.Context, id string) (*types.Application, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
}

type ServiceInterface interface {
	Issue(ctx context.Context, applicationID string) (*types.InviteToken, error)
	EnsureActiveToken(ctx context.Context, applicationID string) (*types.InviteToken, error)
	Redeem(ctx context.Context, token, identityID, origin string) (*RedemptionResult, error)
}
