// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invite manages the one time invite tokens minted for accepted
// applications and their redemption into a project destination.
package invite

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/internal/types"
)

const tokenBytes = 32

// Redemption outcome kinds, checked in this order: existence, ownership,
// used, expiry.
const (
	RedemptionInvalid      = "invalid_token"
	RedemptionUnauthorized = "unauthorized"
	RedemptionUsed         = "token_used"
	RedemptionExpired      = "token_expired"
	RedemptionSuccess      = "success"
)

// RedemptionResult is the typed outcome of a redemption attempt. Destination
// is set only on success; UsedAt only when the token was already spent.
type RedemptionResult struct {
	Kind        string
	Destination string
	UsedAt      *time.Time
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage       StorageInterface
	tokenLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tokenLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:       storage,
		tokenLifetime: tokenLifetime,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// Issue mints a fresh unused token for the application.
func (s *Service) Issue(ctx context.Context, applicationID string) (*types.InviteToken, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.Issue")
	defer span.End()

	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	t := &types.InviteToken{
		ApplicationID: applicationID,
		Token:         hex.EncodeToString(raw),
		ExpiresAt:     time.Now().Add(s.tokenLifetime),
	}

	created, err := s.storage.CreateInviteToken(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	return created, nil
}

// EnsureActiveToken returns the application's live token, minting one if none
// exists or the previous one lapsed.
func (s *Service) EnsureActiveToken(ctx context.Context, applicationID string) (*types.InviteToken, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.EnsureActiveToken")
	defer span.End()

	t, err := s.storage.FindActiveTokenForApplication(ctx, applicationID)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up active token: %w", err)
	}

	return s.Issue(ctx, applicationID)
}

// Redeem spends the token on behalf of identityID. Checks run in a fixed
// order so an attacker probing with a stolen token learns nothing about its
// state: existence, ownership, used, expiry.
func (s *Service) Redeem(ctx context.Context, token, identityID, origin string) (*RedemptionResult, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.Redeem")
	defer span.End()

	t, err := s.storage.GetInviteToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &RedemptionResult{Kind: RedemptionInvalid}, nil
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	app, err := s.storage.GetApplicationByID(ctx, t.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up application: %w", err)
	}

	if app.IdentityID != identityID {
		s.logger.Security().TokenTheftAttempt(app.IdentityID, identityID, origin)
		return &RedemptionResult{Kind: RedemptionUnauthorized}, nil
	}

	if t.Used {
		return &RedemptionResult{Kind: RedemptionUsed, UsedAt: t.UsedAt}, nil
	}

	if time.Now().After(t.ExpiresAt) {
		return &RedemptionResult{Kind: RedemptionExpired}, nil
	}

	redeemed, err := s.storage.RedeemToken(ctx, t.Token, origin)
	if err != nil {
		return nil, fmt.Errorf("failed to redeem token: %w", err)
	}
	if !redeemed {
		// Lost the race to a concurrent redeemer. Re-read for its used_at.
		current, err := s.storage.GetInviteToken(ctx, t.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read token: %w", err)
		}
		return &RedemptionResult{Kind: RedemptionUsed, UsedAt: current.UsedAt}, nil
	}

	project, err := s.storage.GetProjectByID(ctx, app.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}

	s.logger.Security().TokenRedeemed(identityID, origin)

	return &RedemptionResult{Kind: RedemptionSuccess, Destination: project.DestinationURL}, nil
}
