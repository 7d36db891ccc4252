// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"

	"github.com/canonical/vault-service/internal/types"
)

type LedgerInterface interface {
	Create(ctx context.Context, vaultID, senderID, receiverEmail string) (*types.Invitation, error)
	LinkByEmail(ctx context.Context, email, userID string) (int64, error)
	Claim(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error)
	Accept(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error)
	Decline(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error)
	Cancel(ctx context.Context, invitationID, actingUserID string) error
	Delete(ctx context.Context, invitationID, actingUserID string) error
	Get(ctx context.Context, invitationID string) (*types.Invitation, error)
	ListPendingForUser(ctx context.Context, userID string) ([]*types.Invitation, error)
	ListSentBy(ctx context.Context, userID string) ([]*types.Invitation, error)
	ListForVault(ctx context.Context, vaultID string) ([]*types.Invitation, error)
}

// LinkerInterface attaches invitations sent to an email address to the account
// registered with it. Registration only depends on this, so linking can move
// behind an outbox without touching callers.
type LinkerInterface interface {
	LinkByEmail(ctx context.Context, email, userID string) (int64, error)
}

type StorageInterface interface {
	GetVaultByID(ctx context.Context, id string) (*types.Vault, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetMembership(ctx context.Context, vaultID, userID string) (*types.Membership, error)
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationForUpdate(ctx context.Context, id string) (*types.Invitation, error)
	CountPendingInvitationsByEmail(ctx context.Context, vaultID, email string) (int64, error)
	CountPendingInvitationsByReceiver(ctx context.Context, vaultID, receiverID string) (int64, error)
	LinkInvitationsByEmail(ctx context.Context, email, userID string) (int64, error)
	TransitionInvitation(ctx context.Context, id, receiverID string, to types.InvitationStatus) (*types.Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error
	ListPendingInvitationsByReceiver(ctx context.Context, receiverID string) ([]*types.Invitation, error)
	ListInvitationsBySender(ctx context.Context, senderID string) ([]*types.Invitation, error)
	ListInvitationsByTarget(ctx context.Context, vaultID string) ([]*types.Invitation, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type NotificationsInterface interface {
	DeleteByRelatedID(ctx context.Context, relatedID string) error
}
