// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/ethosgate/access-service/internal/ethos"
	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/types"
	"github.com/ethosgate/access-service/pkg/criteria"
)

//go:generate mockgen -build_flags=--mod=mod -package application -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package application -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package application -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package application -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const testCooldown = 72 * time.Hour

func activeProject() *types.Project {
	return &types.Project{
		ID:     "project-1",
		Slug:   "gated-discord",
		Name:   "Gated Discord",
		Active: true,
		Criteria: criteria.Criteria{
			MinScore:               1400,
			MinVouches:             1,
			RequirePositiveReviews: true,
			MinAccountAge:          7,
		},
	}
}

func goodProfile() *types.ReputationProfile {
	return &types.ReputationProfile{
		IdentityID:    "identity-1",
		Score:         1500,
		VouchCount:    2,
		ReviewBalance: 3,
		AccountAge:    60,
	}
}

func TestService_Apply(t *testing.T) {
	identityID := "identity-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockReputationInterface, *MockInviteIssuerInterface)
		expectedKind string
		expectedErr  error
		check        func(*testing.T, *Outcome)
	}{
		{
			name: "first application accepted",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(nil, storage.ErrNotFound)
				mockReputation.EXPECT().GetProfile(gomock.Any(), identityID).Return(goodProfile(), nil)
				mockStorage.EXPECT().UpsertApplication(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Application) (*types.Application, error) {
						if a.Status != types.StatusAccepted {
							t.Errorf("expected accepted status on upsert, got %q", a.Status)
						}
						if a.Score != 1500 {
							t.Errorf("expected score snapshot 1500, got %d", a.Score)
						}
						if a.CriteriaSnapshot.MinScore != 1400 {
							t.Errorf("expected the project criteria to be snapshotted, got %+v", a.CriteriaSnapshot)
						}
						if a.CanReapplyAt != nil {
							t.Error("expected no reapply time on acceptance")
						}
						a.ID = "app-1"
						return a, nil
					})
				mockInvites.EXPECT().EnsureActiveToken(gomock.Any(), "app-1").Return(&types.InviteToken{Token: "tok", ExpiresAt: time.Now().Add(24 * time.Hour)}, nil)
			},
			expectedKind: OutcomeAccepted,
			check: func(t *testing.T, o *Outcome) {
				if o.Token != "tok" {
					t.Errorf("expected invite token on accepted outcome, got %q", o.Token)
				}
			},
		},
		{
			name: "first application rejected",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				profile := goodProfile()
				profile.Score = 1000
				profile.VouchCount = 0
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(nil, storage.ErrNotFound)
				mockReputation.EXPECT().GetProfile(gomock.Any(), identityID).Return(profile, nil)
				mockStorage.EXPECT().UpsertApplication(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Application) (*types.Application, error) {
						if a.Status != types.StatusRejected {
							t.Errorf("expected rejected status on upsert, got %q", a.Status)
						}
						if len(a.FailedRules) != 2 {
							t.Errorf("expected 2 failed rules, got %d", len(a.FailedRules))
						}
						if a.CriteriaSnapshot.MinScore != 1400 {
							t.Errorf("expected the project criteria to be snapshotted, got %+v", a.CriteriaSnapshot)
						}
						if a.CanReapplyAt == nil {
							t.Fatal("expected a persisted reapply time on rejection")
						}
						if a.CanReapplyAt.Before(time.Now().Add(testCooldown - time.Minute)) {
							t.Errorf("expected reapply time about %v from now, got %v", testCooldown, a.CanReapplyAt)
						}
						a.ID = "app-1"
						return a, nil
					})
			},
			expectedKind: OutcomeRejected,
			check: func(t *testing.T, o *Outcome) {
				if o.Reason == "" {
					t.Error("expected a rejection reason")
				}
				if o.Application.CanReapplyAt == nil || !o.CanReapplyAt.Equal(*o.Application.CanReapplyAt) {
					t.Errorf("expected the outcome to echo the stored reapply time, got %v", o.CanReapplyAt)
				}
			},
		},
		{
			name: "manual review project yields pending",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				p := activeProject()
				p.ManualReview = true
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(p, nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(nil, storage.ErrNotFound)
				mockReputation.EXPECT().GetProfile(gomock.Any(), identityID).Return(goodProfile(), nil)
				mockStorage.EXPECT().UpsertApplication(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Application) (*types.Application, error) {
						if a.Status != types.StatusPending {
							t.Errorf("expected pending status on upsert, got %q", a.Status)
						}
						a.ID = "app-1"
						return a, nil
					})
			},
			expectedKind: OutcomePending,
		},
		{
			name: "accepted application is returned unchanged",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(
					&types.Application{ID: "app-1", Status: types.StatusAccepted}, nil)
				mockInvites.EXPECT().EnsureActiveToken(gomock.Any(), "app-1").Return(&types.InviteToken{Token: "tok"}, nil)
			},
			expectedKind: OutcomeAccepted,
		},
		{
			name: "pending application is returned unchanged",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(
					&types.Application{ID: "app-1", Status: types.StatusPending}, nil)
			},
			expectedKind: OutcomePending,
		},
		{
			name: "rejection inside cooldown is not re-evaluated",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				canReapplyAt := time.Now().Add(71 * time.Hour)
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(
					&types.Application{
						ID:           "app-1",
						Status:       types.StatusRejected,
						FailedRules:  []string{"score 1000 is below the required 1400"},
						CanReapplyAt: &canReapplyAt,
						UpdatedAt:    time.Now().Add(-time.Hour),
					}, nil)
			},
			expectedKind: OutcomeCooldownActive,
			check: func(t *testing.T, o *Outcome) {
				if o.Reason != "score 1000 is below the required 1400" {
					t.Errorf("expected the original rejection reason, got %q", o.Reason)
				}
				if o.Application.CanReapplyAt == nil || !o.CanReapplyAt.Equal(*o.Application.CanReapplyAt) {
					t.Errorf("expected the stored reapply time verbatim, got %v", o.CanReapplyAt)
				}
			},
		},
		{
			name: "stored reapply time governs over elapsed wall time",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				canReapplyAt := time.Now().Add(30 * time.Minute)
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(
					&types.Application{
						ID:           "app-1",
						Status:       types.StatusRejected,
						CanReapplyAt: &canReapplyAt,
						UpdatedAt:    time.Now().Add(-100 * time.Hour),
					}, nil)
			},
			expectedKind: OutcomeCooldownActive,
		},
		{
			name: "rejection after cooldown is re-evaluated",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				canReapplyAt := time.Now().Add(-time.Hour)
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(
					&types.Application{
						ID:           "app-1",
						Status:       types.StatusRejected,
						CanReapplyAt: &canReapplyAt,
						UpdatedAt:    time.Now().Add(-testCooldown - time.Hour),
					}, nil)
				mockReputation.EXPECT().GetProfile(gomock.Any(), identityID).Return(goodProfile(), nil)
				mockStorage.EXPECT().UpsertApplication(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Application) (*types.Application, error) {
						a.ID = "app-1"
						return a, nil
					})
				mockInvites.EXPECT().EnsureActiveToken(gomock.Any(), "app-1").Return(&types.InviteToken{Token: "tok"}, nil)
			},
			expectedKind: OutcomeAccepted,
		},
		{
			name: "unknown project",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrProjectNotFound,
		},
		{
			name: "inactive project",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				p := activeProject()
				p.Active = false
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(p, nil)
			},
			expectedErr: ErrProjectNotFound,
		},
		{
			name: "missing reputation profile",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(nil, storage.ErrNotFound)
				mockReputation.EXPECT().GetProfile(gomock.Any(), identityID).Return(nil, ethos.ErrProfileNotFound)
			},
			expectedErr: ErrNoProfile,
		},
		{
			name: "provider outage is an error, not a rejection",
			setupMocks: func(mockStorage *MockStorageInterface, mockReputation *MockReputationInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
				mockStorage.EXPECT().GetApplicationByProjectAndIdentity(gomock.Any(), "project-1", identityID).Return(nil, storage.ErrNotFound)
				mockReputation.EXPECT().GetProfile(gomock.Any(), identityID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockReputation := NewMockReputationInterface(ctrl)
			mockInvites := NewMockInviteIssuerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockReputation, mockInvites, testCooldown, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "application.Service.Apply").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockReputation, mockInvites)

			outcome, err := s.Apply(context.Background(), "gated-discord", identityID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if outcome.Kind != tc.expectedKind {
				t.Errorf("expected outcome %q, got %q", tc.expectedKind, outcome.Kind)
			}

			if tc.check != nil {
				tc.check(t, outcome)
			}
		})
	}
}

func TestService_Review(t *testing.T) {
	testCases := []struct {
		name        string
		status      string
		setupMocks  func(*MockStorageInterface, *MockInviteIssuerInterface)
		expectedErr error
		expectToken bool
	}{
		{
			name:   "approval mints a token",
			status: types.StatusAccepted,
			setupMocks: func(mockStorage *MockStorageInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().UpdateApplicationStatus(gomock.Any(), "app-1", types.StatusAccepted, "reviewer-1").Return(
					&types.Application{ID: "app-1", Status: types.StatusAccepted, ReviewedBy: "reviewer-1"}, nil)
				mockInvites.EXPECT().EnsureActiveToken(gomock.Any(), "app-1").Return(&types.InviteToken{Token: "tok"}, nil)
			},
			expectToken: true,
		},
		{
			name:   "denial mints nothing",
			status: types.StatusRejected,
			setupMocks: func(mockStorage *MockStorageInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().UpdateApplicationStatus(gomock.Any(), "app-1", types.StatusRejected, "reviewer-1").Return(
					&types.Application{ID: "app-1", Status: types.StatusRejected}, nil)
			},
		},
		{
			name:        "invalid verdict",
			status:      "maybe",
			setupMocks:  func(*MockStorageInterface, *MockInviteIssuerInterface) {},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:   "unknown application",
			status: types.StatusAccepted,
			setupMocks: func(mockStorage *MockStorageInterface, mockInvites *MockInviteIssuerInterface) {
				mockStorage.EXPECT().UpdateApplicationStatus(gomock.Any(), "app-1", types.StatusAccepted, "reviewer-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockReputation := NewMockReputationInterface(ctrl)
			mockInvites := NewMockInviteIssuerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockReputation, mockInvites, testCooldown, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "application.Service.Review").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockInvites)

			app, token, err := s.Review(context.Background(), "app-1", tc.status, "reviewer-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if app == nil {
				t.Fatal("expected an application")
			}

			if tc.expectToken && token == nil {
				t.Error("expected an invite token")
			}
			if !tc.expectToken && token != nil {
				t.Error("expected no invite token")
			}
		})
	}
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockReputation := NewMockReputationInterface(ctrl)
	mockInvites := NewMockInviteIssuerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockReputation, mockInvites, testCooldown, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "application.Service.Stats").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(activeProject(), nil)
	mockStorage.EXPECT().GetApplicationStats(gomock.Any(), "project-1").Return(&types.ApplicationStats{Total: 10, Accepted: 6, Rejected: 3, Pending: 1}, nil)

	stats, err := s.Stats(context.Background(), "gated-discord")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Total != 10 || stats.Accepted != 6 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
