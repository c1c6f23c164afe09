// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/ethosgate/access-service/internal/storage"
	"github.com/ethosgate/access-service/internal/types"
	"github.com/ethosgate/access-service/pkg/criteria"
)

//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

func validProject() *types.Project {
	return &types.Project{
		Slug:            "gated-discord",
		Name:            "Gated Discord",
		DestinationURL:  "https://discord.gg/example",
		DestinationType: types.DestinationDiscord,
		Criteria:        criteria.ResolvePreset(criteria.PresetStandard),
	}
}

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name        string
		project     *types.Project
		setupMocks  func(*MockStorageInterface)
		expectedErr error
		wantErr     bool
	}{
		{
			name:    "valid project is activated and stored",
			project: validProject(),
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Project) (*types.Project, error) {
						if !p.Active {
							t.Error("expected a new project to be active")
						}
						p.ID = "project-1"
						return p, nil
					})
			},
		},
		{
			name: "criteria out of bounds",
			project: func() *types.Project {
				p := validProject()
				p.Criteria.MinScore = 5000
				return p
			}(),
			setupMocks: func(*MockStorageInterface) {},
			wantErr:    true,
		},
		{
			name:    "slug collision",
			project: validProject(),
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrSlugTaken,
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

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.Create").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			created, err := s.Create(context.Background(), tc.project)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if created.ID == "" {
				t.Error("expected the stored project back")
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	testCases := []struct {
		name        string
		paths       []string
		project     *types.Project
		setupMocks  func(*MockStorageInterface)
		expectedErr error
		wantErr     bool
	}{
		{
			name:    "rename",
			paths:   []string{"name"},
			project: &types.Project{Name: "Renamed"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(
					&types.Project{ID: "project-1", Slug: "gated-discord"}, nil)
				mockStorage.EXPECT().UpdateProject(gomock.Any(), gomock.Any(), []string{"name"}).DoAndReturn(
					func(_ context.Context, p *types.Project, _ []string) error {
						if p.ID != "project-1" {
							t.Errorf("expected update against project-1, got %q", p.ID)
						}
						return nil
					})
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(
					&types.Project{ID: "project-1", Slug: "gated-discord", Name: "Renamed"}, nil)
			},
		},
		{
			name:  "criteria update is validated",
			paths: []string{"criteria"},
			project: &types.Project{Criteria: criteria.Criteria{
				MinScore:   1400,
				MinVouches: 500,
			}},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(
					&types.Project{ID: "project-1", Slug: "gated-discord"}, nil)
			},
			wantErr: true,
		},
		{
			name:    "unknown project",
			paths:   []string{"name"},
			project: &types.Project{Name: "Renamed"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetProjectBySlug(gomock.Any(), "gated-discord").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
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

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.Update").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			updated, err := s.Update(context.Background(), "gated-discord", tc.project, tc.paths)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if updated.Name != "Renamed" {
				t.Errorf("expected the refreshed project, got %+v", updated)
			}
		})
	}
}
