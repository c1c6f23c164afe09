// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethosgate/access-service/internal/types"
)

const projectColumns = "id, slug, name, description, benefits, destination_url, destination_type, criteria, manual_review, active, created_at, updated_at"

func scanProject(row sq.RowScanner) (*types.Project, error) {
	var p types.Project
	var rawCriteria []byte
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.Benefits, &p.DestinationURL, &p.DestinationType, &rawCriteria, &p.ManualReview, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawCriteria, &p.Criteria); err != nil {
		return nil, fmt.Errorf("failed to parse criteria: %w", err)
	}

	return &p, nil
}

func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate project ID: %w", err)
	}

	criteriaJSON, err := json.Marshal(p.Criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize criteria: %w", err)
	}

	created, err := scanProject(
		s.db.Statement(ctx).
			Insert("projects").
			Columns("id", "slug", "name", "description", "benefits", "destination_url", "destination_type", "criteria", "manual_review", "active").
			Values(id.String(), p.Slug, p.Name, p.Description, p.Benefits, p.DestinationURL, p.DestinationType, criteriaJSON, p.ManualReview, p.Active).
			Suffix("RETURNING " + projectColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return created, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	return s.getProject(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetProjectBySlug(ctx context.Context, slug string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectBySlug")
	defer span.End()

	return s.getProject(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getProject(ctx context.Context, where sq.Eq) (*types.Project, error) {
	p, err := scanProject(
		s.db.Statement(ctx).
			Select(projectColumns).
			From("projects").
			Where(where).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (s *Storage) ListProjects(ctx context.Context) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjects")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(projectColumns).
		From("projects").
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

// UpdateProject updates the fields named in paths, following PATCH semantics.
// Past decision snapshots on applications are never touched.
func (s *Storage) UpdateProject(ctx context.Context, p *types.Project, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProject")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = p.Name
		case "description":
			updateMap["description"] = p.Description
		case "benefits":
			updateMap["benefits"] = p.Benefits
		case "destination_url":
			updateMap["destination_url"] = p.DestinationURL
		case "destination_type":
			updateMap["destination_type"] = p.DestinationType
		case "manual_review":
			updateMap["manual_review"] = p.ManualReview
		case "active":
			updateMap["active"] = p.Active
		case "criteria":
			criteriaJSON, err := json.Marshal(p.Criteria)
			if err != nil {
				return fmt.Errorf("failed to serialize criteria: %w", err)
			}
			updateMap["criteria"] = criteriaJSON
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("projects").
		SetMap(updateMap).
		Where(sq.Eq{"id": p.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
