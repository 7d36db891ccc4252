// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/vault-service/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateSubscription(ctx context.Context, userID string, status types.SubscriptionStatus, trialExpiresAt *time.Time) error

	CreateVault(ctx context.Context, v *types.Vault) (*types.Vault, error)
	GetVaultByID(ctx context.Context, id string) (*types.Vault, error)
	ListVaultsByUserID(ctx context.Context, userID string) ([]*types.Vault, error)
	DeleteVault(ctx context.Context, id string) error

	AddMember(ctx context.Context, vaultID, userID string, role types.Role) (string, error)
	GetMembership(ctx context.Context, vaultID, userID string) (*types.Membership, error)
	ListMembersByVaultID(ctx context.Context, vaultID string) ([]*types.VaultMember, error)
	RemoveMember(ctx context.Context, vaultID, userID string) error
	UpdateMemberRole(ctx context.Context, vaultID, userID string, role types.Role) error

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

	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotificationsByUserID(ctx context.Context, userID string, limit, offset uint64) ([]*types.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int64, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
	MarkNotificationsReadByRelatedID(ctx context.Context, relatedID, userID string) (int64, error)
	DeleteNotification(ctx context.Context, id, userID string) error
	DeleteNotificationsByRelatedID(ctx context.Context, relatedID string) (int64, error)
}
