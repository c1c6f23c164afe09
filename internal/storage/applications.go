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

	"github.com/ethosgate/access-service/internal/db"
	"github.com/ethosgate/access-service/internal/types"
)

const applicationColumns = "id, project_id, identity_id, status, score, failed_rules, criteria_snapshot, can_reapply_at, reviewed_by, created_at, updated_at"

func scanApplication(row sq.RowScanner) (*types.Application, error) {
	var a types.Application
	var rawRules, rawCriteria []byte
	err := row.Scan(&a.ID, &a.ProjectID, &a.IdentityID, &a.Status, &a.Score, &rawRules, &rawCriteria, &a.CanReapplyAt, &a.ReviewedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(rawRules) > 0 {
		if err := json.Unmarshal(rawRules, &a.FailedRules); err != nil {
			return nil, fmt.Errorf("failed to parse failed rules: %w", err)
		}
	}

	if len(rawCriteria) > 0 {
		if err := json.Unmarshal(rawCriteria, &a.CriteriaSnapshot); err != nil {
			return nil, fmt.Errorf("failed to parse criteria snapshot: %w", err)
		}
	}

	return &a, nil
}

func (s *Storage) GetApplicationByID(ctx context.Context, id string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationByID")
	defer span.End()

	a, err := scanApplication(
		s.db.Statement(ctx).
			Select(applicationColumns).
			From("applications").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return a, nil
}

func (s *Storage) GetApplicationByProjectAndIdentity(ctx context.Context, projectID, identityID string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationByProjectAndIdentity")
	defer span.End()

	a, err := scanApplication(
		s.db.Statement(ctx).
			Select(applicationColumns).
			From("applications").
			Where(sq.Eq{"project_id": projectID, "identity_id": identityID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return a, nil
}

// UpsertApplication inserts the application, overwriting the decision fields
// of an existing row for the same (project, identity) pair. The unique index
// makes concurrent first applications converge on a single row.
func (s *Storage) UpsertApplication(ctx context.Context, a *types.Application) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertApplication")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application ID: %w", err)
	}

	rulesJSON, err := json.Marshal(a.FailedRules)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize failed rules: %w", err)
	}

	criteriaJSON, err := json.Marshal(a.CriteriaSnapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize criteria snapshot: %w", err)
	}

	upserted, err := scanApplication(
		s.db.Statement(ctx).
			Insert("applications").
			Columns("id", "project_id", "identity_id", "status", "score", "failed_rules", "criteria_snapshot", "can_reapply_at").
			Values(id.String(), a.ProjectID, a.IdentityID, a.Status, a.Score, rulesJSON, criteriaJSON, a.CanReapplyAt).
			Suffix(`ON CONFLICT (project_id, identity_id) DO UPDATE
				SET status = EXCLUDED.status,
					score = EXCLUDED.score,
					failed_rules = EXCLUDED.failed_rules,
					criteria_snapshot = EXCLUDED.criteria_snapshot,
					can_reapply_at = EXCLUDED.can_reapply_at,
					reviewed_by = '',
					updated_at = now()
				RETURNING `+applicationColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert application: %w", err)
	}

	return upserted, nil
}

func (s *Storage) UpdateApplicationStatus(ctx context.Context, id, status, reviewedBy string) (*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateApplicationStatus")
	defer span.End()

	a, err := scanApplication(
		s.db.Statement(ctx).
			Update("applications").
			Set("status", status).
			Set("reviewed_by", reviewedBy).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING " + applicationColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return a, nil
}

func (s *Storage) ListApplicationsByProject(ctx context.Context, projectID, status string, page, size int64) ([]*types.Application, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListApplicationsByProject")
	defer span.End()

	pageSize := db.PageSize(size)

	query := s.db.Statement(ctx).
		Select(applicationColumns).
		From("applications").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize)

	if status != "" {
		query = query.Where(sq.Eq{"status": status})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var applications []*types.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return applications, nil
}

func (s *Storage) GetApplicationStats(ctx context.Context, projectID string) (*types.ApplicationStats, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationStats")
	defer span.End()

	var stats types.ApplicationStats
	err := s.db.Statement(ctx).
		Select(
			"count(*)",
			fmt.Sprintf("count(*) FILTER (WHERE status = '%s')", types.StatusAccepted),
			fmt.Sprintf("count(*) FILTER (WHERE status = '%s')", types.StatusRejected),
			fmt.Sprintf("count(*) FILTER (WHERE status = '%s')", types.StatusPending),
		).
		From("applications").
		Where(sq.Eq{"project_id": projectID}).
		QueryRowContext(ctx).
		Scan(&stats.Total, &stats.Accepted, &stats.Rejected, &stats.Pending)

	if err != nil {
		return nil, fmt.Errorf("failed to get application stats: %w", err)
	}

	return &stats, nil
}
