// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"slices"

	"github.com/coreos/go-oidc/v3/oidc"
)

// ScopeAll marks a principal that passes every scope check, used for
// allow-listed subjects and the noop verifier.
const ScopeAll = "*"

// Principal is an authenticated caller: the token subject and the scopes the
// token carries.
type Principal struct {
	Subject string
	Scopes  []string
}

func (p *Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, ScopeAll) || slices.Contains(p.Scopes, scope)
}

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims.
	// Returns the principal if the token is valid and authorized.
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}
