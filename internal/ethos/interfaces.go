// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ethos

import (
	"context"

	"github.com/ethosgate/access-service/internal/types"
)

type ClientInterface interface {
	GetProfile(ctx context.Context, identityID string) (*types.ReputationProfile, error)
}
