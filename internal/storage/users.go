// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/vault-service/internal/types"
)

var userColumns = []string{"id", "email", "name", "subscription_status", "trial_expires_at", "created_at"}

// CreateUser inserts the user keyed on its identity id. Registration hooks can be
// redelivered, so an existing row only gets its email refreshed.
func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var created types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "name", "subscription_status", "trial_expires_at").
		Values(u.ID, normalizeEmail(u.Email), u.Name, string(u.SubscriptionStatus), u.TrialExpiresAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email RETURNING " + strings.Join(userColumns, ", ")).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Email, &created.Name, &created.SubscriptionStatus, &created.TrialExpiresAt, &created.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert user")
	}

	return &created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": normalizeEmail(email)})
}

func (s *Storage) getUser(ctx context.Context, where sq.Eq) (*types.User, error) {
	var u types.User
	err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(where).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.Name, &u.SubscriptionStatus, &u.TrialExpiresAt, &u.CreatedAt)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) UpdateSubscription(ctx context.Context, userID string, status types.SubscriptionStatus, trialExpiresAt *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSubscription")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("subscription_status", string(status)).
		Set("trial_expires_at", trialExpiresAt).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return expectAffected(res)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
