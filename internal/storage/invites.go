// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethosgate/access-service/internal/types"
)

const inviteTokenColumns = "id, application_id, token, is_used, used_at, used_from_ip, expires_at, created_at"

func scanInviteToken(row sq.RowScanner) (*types.InviteToken, error) {
	var t types.InviteToken
	err := row.Scan(&t.ID, &t.ApplicationID, &t.Token, &t.Used, &t.UsedAt, &t.UsedFromIP, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateInviteToken(ctx context.Context, t *types.InviteToken) (*types.InviteToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInviteToken")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token ID: %w", err)
	}

	created, err := scanInviteToken(
		s.db.Statement(ctx).
			Insert("invite_tokens").
			Columns("id", "application_id", "token", "expires_at").
			Values(id.String(), t.ApplicationID, t.Token, t.ExpiresAt).
			Suffix("RETURNING " + inviteTokenColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invite token: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInviteToken(ctx context.Context, token string) (*types.InviteToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteToken")
	defer span.End()

	t, err := scanInviteToken(
		s.db.Statement(ctx).
			Select(inviteTokenColumns).
			From("invite_tokens").
			Where(sq.Eq{"token": token}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite token: %w", err)
	}

	return t, nil
}

// FindActiveTokenForApplication returns the newest unused, unexpired token for
// the application, or ErrNotFound when none is live.
func (s *Storage) FindActiveTokenForApplication(ctx context.Context, applicationID string) (*types.InviteToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindActiveTokenForApplication")
	defer span.End()

	t, err := scanInviteToken(
		s.db.Statement(ctx).
			Select(inviteTokenColumns).
			From("invite_tokens").
			Where(sq.Eq{"application_id": applicationID, "is_used": false}).
			Where(sq.Expr("expires_at > now()")).
			OrderBy("created_at DESC").
			Limit(1).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active token: %w", err)
	}

	return t, nil
}

// RedeemToken marks the token used, recording when and from where. The
// conditional update makes redemption single use under concurrency: only one
// caller observes a row change, so used_at and used_from_ip are set exactly
// once.
func (s *Storage) RedeemToken(ctx context.Context, token, origin string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RedeemToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invite_tokens").
		Set("is_used", true).
		Set("used_at", sq.Expr("now()")).
		Set("used_from_ip", origin).
		Where(sq.Eq{"token": token, "is_used": false}).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to redeem token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows == 1, nil
}
