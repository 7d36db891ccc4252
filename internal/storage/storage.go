// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/vault-service/internal/db"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID(kind string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s ID: %w", kind, err)
	}
	return id.String(), nil
}

var vaultColumns = []string{"id", "name", "image_url", "owner_id", "is_private", "created_at"}

func (s *Storage) CreateVault(ctx context.Context, v *types.Vault) (*types.Vault, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateVault")
	defer span.End()

	id, err := newID("vault")
	if err != nil {
		return nil, err
	}

	var created types.Vault
	err = s.db.Statement(ctx).
		Insert("vaults").
		Columns("id", "name", "image_url", "owner_id", "is_private").
		Values(id, v.Name, v.ImageURL, v.OwnerID, v.IsPrivate).
		Suffix("RETURNING id, name, image_url, owner_id, is_private, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.ImageURL, &created.OwnerID, &created.IsPrivate, &created.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "insert vault")
	}

	return &created, nil
}

func (s *Storage) GetVaultByID(ctx context.Context, id string) (*types.Vault, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVaultByID")
	defer span.End()

	var v types.Vault
	err := s.db.Statement(ctx).
		Select(vaultColumns...).
		From("vaults").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&v.ID, &v.Name, &v.ImageURL, &v.OwnerID, &v.IsPrivate, &v.CreatedAt)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vault: %w", err)
	}

	return &v, nil
}

func (s *Storage) ListVaultsByUserID(ctx context.Context, userID string) ([]*types.Vault, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListVaultsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("v.id", "v.name", "v.image_url", "v.owner_id", "v.is_private", "v.created_at").
		From("vaults v").
		Join("memberships m ON v.id = m.vault_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("v.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaults: %w", err)
	}
	defer rows.Close()

	var vaults []*types.Vault
	for rows.Next() {
		var v types.Vault
		if err := rows.Scan(&v.ID, &v.Name, &v.ImageURL, &v.OwnerID, &v.IsPrivate, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vault: %w", err)
		}
		vaults = append(vaults, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return vaults, nil
}

// DeleteVault removes the vault, memberships and invitations go with it through ON DELETE CASCADE.
func (s *Storage) DeleteVault(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteVault")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("vaults").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete vault: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) AddMember(ctx context.Context, vaultID, userID string, role types.Role) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := newID("membership")
	if err != nil {
		return "", err
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "vault_id", "user_id", "role").
		Values(id, vaultID, userID, string(role)).
		ExecContext(ctx)

	if err != nil {
		return "", wrapWriteError(err, "add member")
	}

	return id, nil
}

func (s *Storage) GetMembership(ctx context.Context, vaultID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "vault_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"vault_id": vaultID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.VaultID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByVaultID(ctx context.Context, vaultID string) ([]*types.VaultMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByVaultID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("u.id", "u.email", "u.name", "m.role").
		From("memberships m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.vault_id": vaultID}).
		OrderBy("m.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.VaultMember
	for rows.Next() {
		var m types.VaultMember
		if err := rows.Scan(&m.UserID, &m.Email, &m.Name, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// RemoveMember never deletes the owner row, only vault deletion does.
func (s *Storage) RemoveMember(ctx context.Context, vaultID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"vault_id": vaultID, "user_id": userID}).
		Where(sq.NotEq{"role": string(types.RoleOwner)}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return expectAffected(res)
}

// UpdateMemberRole switches a non-owner membership between member and admin.
func (s *Storage) UpdateMemberRole(ctx context.Context, vaultID, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", string(role)).
		Where(sq.Eq{"vault_id": vaultID, "user_id": userID}).
		Where(sq.NotEq{"role": string(types.RoleOwner)}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	return expectAffected(res)
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func expectAffected(res rowsAffected) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
