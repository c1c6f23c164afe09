// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a token verifier that allows all requests.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the token as the identity ID for development purposes,
// with every scope granted.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	return &Principal{Subject: rawToken, Scopes: []string{ScopeAll}}, nil
}
