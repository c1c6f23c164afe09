// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invite -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

const testLifetime = 24 * time.Hour

func TestService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, testLifetime, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "invite.Service.Issue").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().CreateInviteToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok *types.InviteToken) (*types.InviteToken, error) {
			if tok.ApplicationID != "app-1" {
				t.Errorf("expected token bound to app-1, got %q", tok.ApplicationID)
			}
			if len(tok.Token) != 64 {
				t.Errorf("expected a 64 character hex token, got %d characters", len(tok.Token))
			}
			remaining := time.Until(tok.ExpiresAt)
			if remaining < testLifetime-time.Minute || remaining > testLifetime {
				t.Errorf("expected expiry about %v from now, got %v", testLifetime, remaining)
			}
			return tok, nil
		})

	tok, err := s.Issue(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Used {
		t.Error("expected a fresh token to be unused")
	}
}

func TestService_EnsureActiveToken(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface, *MockTracingInterface)
		expectedToken string
		expectedErr   error
	}{
		{
			name: "live token is reused",
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				mockTracer.EXPECT().Start(gomock.Any(), "invite.Service.EnsureActiveToken").Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().FindActiveTokenForApplication(gomock.Any(), "app-1").Return(
					&types.InviteToken{Token: "existing"}, nil)
			},
			expectedToken: "existing",
		},
		{
			name: "no live token mints a fresh one",
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				mockTracer.EXPECT().Start(gomock.Any(), "invite.Service.EnsureActiveToken").Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockTracer.EXPECT().Start(gomock.Any(), "invite.Service.Issue").Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().FindActiveTokenForApplication(gomock.Any(), "app-1").Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateInviteToken(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tok *types.InviteToken) (*types.InviteToken, error) {
						return tok, nil
					})
			},
		},
		{
			name: "lookup failure propagates",
			setupMocks: func(mockStorage *MockStorageInterface, mockTracer *MockTracingInterface) {
				mockTracer.EXPECT().Start(gomock.Any(), "invite.Service.EnsureActiveToken").Return(context.Background(), trace.SpanFromContext(context.Background()))
				mockStorage.EXPECT().FindActiveTokenForApplication(gomock.Any(), "app-1").Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, testLifetime, mockTracer, mockMonitor, mockLogger)

			tc.setupMocks(mockStorage, mockTracer)

			tok, err := s.EnsureActiveToken(context.Background(), "app-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.expectedToken != "" && tok.Token != tc.expectedToken {
				t.Errorf("expected token %q, got %q", tc.expectedToken, tok.Token)
			}
		})
	}
}

func TestService_Redeem(t *testing.T) {
	spentAt := time.Now().Add(-time.Hour)

	liveToken := func() *types.InviteToken {
		return &types.InviteToken{
			ID:            "token-1",
			ApplicationID: "app-1",
			Token:         "tok",
			ExpiresAt:     time.Now().Add(time.Hour),
		}
	}
	ownerApplication := func() *types.Application {
		return &types.Application{ID: "app-1", ProjectID: "project-1", IdentityID: "identity-1", Status: types.StatusAccepted}
	}

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockSecurityLoggerInterface)
		expectedKind string
		check        func(*testing.T, *RedemptionResult)
	}{
		{
			name: "unknown token",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
			},
			expectedKind: RedemptionInvalid,
		},
		{
			name: "wrong identity",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				app := ownerApplication()
				app.IdentityID = "identity-2"
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(liveToken(), nil)
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), "app-1").Return(app, nil)
				mockSecurity.EXPECT().TokenTheftAttempt("identity-2", "identity-1", "10.0.0.1")
			},
			expectedKind: RedemptionUnauthorized,
		},
		{
			name: "ownership is checked before the used flag",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				tok := liveToken()
				tok.Used = true
				tok.UsedAt = &spentAt
				app := ownerApplication()
				app.IdentityID = "identity-2"
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(tok, nil)
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), "app-1").Return(app, nil)
				mockSecurity.EXPECT().TokenTheftAttempt("identity-2", "identity-1", "10.0.0.1")
			},
			expectedKind: RedemptionUnauthorized,
			check: func(t *testing.T, r *RedemptionResult) {
				if r.UsedAt != nil {
					t.Error("expected no used_at on an unauthorized attempt")
				}
			},
		},
		{
			name: "spent token",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				tok := liveToken()
				tok.Used = true
				tok.UsedAt = &spentAt
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(tok, nil)
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), "app-1").Return(ownerApplication(), nil)
			},
			expectedKind: RedemptionUsed,
			check: func(t *testing.T, r *RedemptionResult) {
				if r.UsedAt == nil || !r.UsedAt.Equal(spentAt) {
					t.Errorf("expected used_at %v, got %v", spentAt, r.UsedAt)
				}
			},
		},
		{
			name: "expired token",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				tok := liveToken()
				tok.ExpiresAt = time.Now().Add(-time.Minute)
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(tok, nil)
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), "app-1").Return(ownerApplication(), nil)
			},
			expectedKind: RedemptionExpired,
		},
		{
			name: "successful redemption",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(liveToken(), nil)
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), "app-1").Return(ownerApplication(), nil)
				mockStorage.EXPECT().RedeemToken(gomock.Any(), "tok", "10.0.0.1").Return(true, nil)
				mockStorage.EXPECT().GetProjectByID(gomock.Any(), "project-1").Return(
					&types.Project{ID: "project-1", DestinationURL: "https://discord.gg/example"}, nil)
				mockSecurity.EXPECT().TokenRedeemed("identity-1", "10.0.0.1")
			},
			expectedKind: RedemptionSuccess,
			check: func(t *testing.T, r *RedemptionResult) {
				if r.Destination != "https://discord.gg/example" {
					t.Errorf("expected the project destination, got %q", r.Destination)
				}
			},
		},
		{
			name: "lost redemption race",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				spent := liveToken()
				spent.Used = true
				spent.UsedAt = &spentAt
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(liveToken(), nil)
				mockStorage.EXPECT().GetApplicationByID(gomock.Any(), "app-1").Return(ownerApplication(), nil)
				mockStorage.EXPECT().RedeemToken(gomock.Any(), "tok", "10.0.0.1").Return(false, nil)
				mockStorage.EXPECT().GetInviteToken(gomock.Any(), "tok").Return(spent, nil)
			},
			expectedKind: RedemptionUsed,
			check: func(t *testing.T, r *RedemptionResult) {
				if r.UsedAt == nil {
					t.Error("expected the winner's used_at after losing the race")
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

			s := NewService(mockStorage, testLifetime, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "invite.Service.Redeem").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSecurity)

			result, err := s.Redeem(context.Background(), "tok", "identity-1", "10.0.0.1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Kind != tc.expectedKind {
				t.Errorf("expected redemption kind %q, got %q", tc.expectedKind, result.Kind)
			}

			if tc.check != nil {
				tc.check(t, result)
			}
		})
	}
}
