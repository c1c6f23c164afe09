// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package application implements the application state machine: evaluation on
// apply, idempotent re-requests, the reapply cooldown and the manual review
// path.
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethosgate/access-service/internal/ethos"
	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/tracing"
	"github.com/ethosgate/access-service/internal/types"
	"github.com/ethosgate/access-service/pkg/eligibility"
)

// Outcome kinds returned by Apply.
const (
	OutcomeAccepted       = "accepted"
	OutcomeRejected       = "rejected"
	OutcomePending        = "pending"
	OutcomeCooldownActive = "cooldown_active"
)

var (
	// ErrProjectNotFound covers both unknown slugs and deactivated projects.
	ErrProjectNotFound = errors.New("project not found or closed")
	// ErrNoProfile means the identity has no reputation profile to evaluate.
	ErrNoProfile = errors.New("no reputation profile for identity")
	// ErrInvalidStatus rejects review verdicts outside accepted/rejected.
	ErrInvalidStatus = errors.New("invalid review status")
)

// Outcome is the result of an apply call. Token and TokenExpiresAt are set
// only for accepted outcomes; Reason and CanReapplyAt only for rejections and
// active cooldowns.
type Outcome struct {
	Kind           string
	Application    *types.Application
	Reason         string
	CanReapplyAt   time.Time
	Token          string
	TokenExpiresAt time.Time
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	reputation ReputationInterface
	invites    InviteIssuerInterface
	cooldown   time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	reputation ReputationInterface,
	invites InviteIssuerInterface,
	cooldown time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		reputation: reputation,
		invites:    invites,
		cooldown:   cooldown,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// Apply runs the admission flow for an identity against a project. Re-requests
// against an accepted or pending application are idempotent; a rejected
// application can only be re-evaluated once the cooldown has elapsed.
func (s *Service) Apply(ctx context.Context, slug, identityID string) (*Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "application.Service.Apply")
	defer span.End()

	project, err := s.storage.GetProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}
	if !project.Active {
		return nil, ErrProjectNotFound
	}

	existing, err := s.storage.GetApplicationByProjectAndIdentity(ctx, project.ID, identityID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up application: %w", err)
	}

	if existing != nil {
		switch existing.Status {
		case types.StatusAccepted:
			return s.acceptedOutcome(ctx, existing)
		case types.StatusPending:
			return &Outcome{Kind: OutcomePending, Application: existing}, nil
		case types.StatusRejected:
			// The stored timestamp governs: cooldown config changes never move
			// a past rejection's reapply time.
			if existing.CanReapplyAt != nil && time.Now().Before(*existing.CanReapplyAt) {
				return &Outcome{
					Kind:         OutcomeCooldownActive,
					Application:  existing,
					Reason:       eligibility.Decision{FailedRules: existing.FailedRules}.Reason(),
					CanReapplyAt: *existing.CanReapplyAt,
				}, nil
			}
		}
	}

	// Always evaluate a fresh snapshot against the current criteria.
	profile, err := s.reputation.GetProfile(ctx, identityID)
	if err != nil {
		if errors.Is(err, ethos.ErrProfileNotFound) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("reputation profile unavailable: %w", err)
	}

	decision := eligibility.Evaluate(profile, project.Criteria, project.ManualReview)

	record := &types.Application{
		ProjectID:        project.ID,
		IdentityID:       identityID,
		Status:           decision.Status,
		Score:            decision.Score,
		FailedRules:      decision.FailedRules,
		CriteriaSnapshot: project.Criteria,
	}
	if decision.Status == types.StatusRejected {
		canReapplyAt := time.Now().Add(s.cooldown)
		record.CanReapplyAt = &canReapplyAt
	}

	app, err := s.storage.UpsertApplication(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record application: %w", err)
	}

	switch decision.Status {
	case types.StatusAccepted:
		return s.acceptedOutcome(ctx, app)
	case types.StatusPending:
		return &Outcome{Kind: OutcomePending, Application: app}, nil
	default:
		outcome := &Outcome{
			Kind:        OutcomeRejected,
			Application: app,
			Reason:      decision.Reason(),
		}
		// Echo the stored instant, not a recomputation.
		if app.CanReapplyAt != nil {
			outcome.CanReapplyAt = *app.CanReapplyAt
		}
		return outcome, nil
	}
}

func (s *Service) acceptedOutcome(ctx context.Context, app *types.Application) (*Outcome, error) {
	token, err := s.invites.EnsureActiveToken(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue invite token: %w", err)
	}

	return &Outcome{
		Kind:           OutcomeAccepted,
		Application:    app,
		Token:          token.Token,
		TokenExpiresAt: token.ExpiresAt,
	}, nil
}

// Review records a manual verdict on a pending application. A transition to
// accepted mints an invite token immediately.
func (s *Service) Review(ctx context.Context, id, status, reviewedBy string) (*types.Application, *types.InviteToken, error) {
	ctx, span := s.tracer.Start(ctx, "application.Service.Review")
	defer span.End()

	if status != types.StatusAccepted && status != types.StatusRejected {
		return nil, nil, ErrInvalidStatus
	}

	app, err := s.storage.UpdateApplicationStatus(ctx, id, status, reviewedBy)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, storage.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to update application: %w", err)
	}

	var token *types.InviteToken
	if status == types.StatusAccepted {
		token, err = s.invites.EnsureActiveToken(ctx, app.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to issue invite token: %w", err)
		}
	}

	return app, token, nil
}

func (s *Service) List(ctx context.Context, slug, status string, page, size int64) ([]*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "application.Service.List")
	defer span.End()

	project, err := s.storage.GetProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}

	return s.storage.ListApplicationsByProject(ctx, project.ID, status, page, size)
}

func (s *Service) Stats(ctx context.Context, slug string) (*types.ApplicationStats, error) {
	ctx, span := s.tracer.Start(ctx, "application.Service.Stats")
	defer span.End()

	project, err := s.storage.GetProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to look up project: %w", err)
	}

	return s.storage.GetApplicationStats(ctx, project.ID)
}
