// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/vault-service/internal/types"
)

var invitationColumns = []string{
	"id", "type", "target_id", "target_name", "sender_id", "receiver_id", "receiver_email", "status", "created_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (*types.Invitation, error) {
	var inv types.Invitation
	err := row.Scan(
		&inv.ID,
		&inv.Type,
		&inv.TargetID,
		&inv.TargetName,
		&inv.SenderID,
		&inv.ReceiverID,
		&inv.ReceiverEmail,
		&inv.Status,
		&inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := newID("invitation")
	if err != nil {
		return nil, err
	}

	created, err := scanInvitation(
		s.db.Statement(ctx).
			Insert("invitations").
			Columns("id", "type", "target_id", "target_name", "sender_id", "receiver_id", "receiver_email", "status").
			Values(
				id,
				string(inv.Type),
				inv.TargetID,
				inv.TargetName,
				inv.SenderID,
				inv.ReceiverID,
				normalizeEmail(inv.ReceiverEmail),
				string(types.InvitationPending),
			).
			Suffix("RETURNING " + strings.Join(invitationColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, wrapWriteError(err, "insert invitation")
	}

	return created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	inv, err := scanInvitation(
		s.db.Statement(ctx).
			Select(invitationColumns...).
			From("invitations").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// GetInvitationForUpdate locks the row until the surrounding transaction ends.
func (s *Storage) GetInvitationForUpdate(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationForUpdate")
	defer span.End()

	inv, err := scanInvitation(
		s.db.Statement(ctx).
			Select(invitationColumns...).
			From("invitations").
			Where(sq.Eq{"id": id}).
			Suffix("FOR UPDATE").
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) CountPendingInvitationsByEmail(ctx context.Context, vaultID, email string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPendingInvitationsByEmail")
	defer span.End()

	return s.countPending(ctx, sq.Eq{
		"target_id":      vaultID,
		"receiver_email": normalizeEmail(email),
	})
}

func (s *Storage) CountPendingInvitationsByReceiver(ctx context.Context, vaultID, receiverID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPendingInvitationsByReceiver")
	defer span.End()

	return s.countPending(ctx, sq.Eq{
		"target_id":   vaultID,
		"receiver_id": receiverID,
	})
}

func (s *Storage) countPending(ctx context.Context, where sq.Eq) (int64, error) {
	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("invitations").
		Where(where).
		Where(sq.Eq{"status": string(types.InvitationPending)}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count pending invitations: %w", err)
	}

	return count, nil
}

// LinkInvitationsByEmail attaches a freshly registered identity to the pending
// invitations that were addressed to its email before the account existed.
// Processed invitations detached from a deleted account stay detached.
func (s *Storage) LinkInvitationsByEmail(ctx context.Context, email, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LinkInvitationsByEmail")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("receiver_id", userID).
		Where(sq.Eq{
			"receiver_email": normalizeEmail(email),
			"receiver_id":    nil,
			"status":         string(types.InvitationPending),
		}).
		ExecContext(ctx)

	if err != nil {
		return 0, wrapWriteError(err, "link invitations")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}

// TransitionInvitation moves a pending invitation addressed to receiverID into the
// given status. ErrNotFound means no row matched, either because it is gone,
// already processed, or belongs to somebody else.
func (s *Storage) TransitionInvitation(ctx context.Context, id, receiverID string, to types.InvitationStatus) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionInvitation")
	defer span.End()

	inv, err := scanInvitation(
		s.db.Statement(ctx).
			Update("invitations").
			Set("status", string(to)).
			Where(sq.Eq{
				"id":          id,
				"receiver_id": receiverID,
				"status":      string(types.InvitationPending),
			}).
			Suffix("RETURNING " + strings.Join(invitationColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to transition invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) ListPendingInvitationsByReceiver(ctx context.Context, receiverID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByReceiver")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{
		"receiver_id": receiverID,
		"status":      string(types.InvitationPending),
	})
}

func (s *Storage) ListInvitationsBySender(ctx context.Context, senderID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsBySender")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"sender_id": senderID})
}

func (s *Storage) ListInvitationsByTarget(ctx context.Context, vaultID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByTarget")
	defer span.End()

	return s.listInvitations(ctx, sq.Eq{"target_id": vaultID})
}

func (s *Storage) listInvitations(ctx context.Context, where sq.Eq) ([]*types.Invitation, error) {
	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(where).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}
