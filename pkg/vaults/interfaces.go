// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vaults

import (
	"context"

	"github.com/canonical/vault-service/internal/access"
	"github.com/canonical/vault-service/internal/mail"
	"github.com/canonical/vault-service/internal/types"
)

type ManagerInterface interface {
	CreateVault(ctx context.Context, ownerID, name string, imageURL *string, isPrivate bool) (*types.Vault, error)
	GetVault(ctx context.Context, vaultID, userID string) (*types.Vault, error)
	ListVaultsForUser(ctx context.Context, userID string) ([]*types.Vault, error)
	DeleteVault(ctx context.Context, vaultID, actingUserID string) error
	ListMembers(ctx context.Context, vaultID, userID string) ([]*types.VaultMember, error)
	RemoveMember(ctx context.Context, vaultID, userID, actingUserID string) error
	LeaveVault(ctx context.Context, vaultID, userID string) error
	UpdateMemberRole(ctx context.Context, vaultID, userID string, role types.Role, actingUserID string) error
	VaultAccess(ctx context.Context, vaultID, userID string) (bool, error)
	Capabilities(ctx context.Context, userID string) (*access.Capabilities, error)
	Invite(ctx context.Context, vaultID, senderID, receiverEmail string) (*types.Invitation, error)
	ListInvitations(ctx context.Context, vaultID, userID string) ([]*types.Invitation, error)
	AcceptInvitation(ctx context.Context, invitationID, userID string) (*types.Invitation, error)
	DeclineInvitation(ctx context.Context, invitationID, userID string) (*types.Invitation, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	CreateVault(ctx context.Context, v *types.Vault) (*types.Vault, error)
	GetVaultByID(ctx context.Context, id string) (*types.Vault, error)
	ListVaultsByUserID(ctx context.Context, userID string) ([]*types.Vault, error)
	DeleteVault(ctx context.Context, id string) error
	AddMember(ctx context.Context, vaultID, userID string, role types.Role) (string, error)
	GetMembership(ctx context.Context, vaultID, userID string) (*types.Membership, error)
	ListMembersByVaultID(ctx context.Context, vaultID string) ([]*types.VaultMember, error)
	RemoveMember(ctx context.Context, vaultID, userID string) error
	UpdateMemberRole(ctx context.Context, vaultID, userID string, role types.Role) error
}

type LedgerInterface interface {
	Create(ctx context.Context, vaultID, senderID, receiverEmail string) (*types.Invitation, error)
	Claim(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error)
	Accept(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error)
	Decline(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error)
	ListForVault(ctx context.Context, vaultID string) ([]*types.Invitation, error)
}

type NotificationsInterface interface {
	Create(ctx context.Context, userID string, notificationType types.NotificationType, message string, link, relatedID *string) (*types.Notification, error)
	MarkReadByRelatedID(ctx context.Context, relatedID, userID string) error
}

type EvaluatorInterface interface {
	HasFullAccess(user *types.User) bool
	CanCreateVaults(user *types.User) bool
	CanAccessVault(user *types.User, vaultOwnerID string, isMember bool) bool
	CanManageVaultResources(user *types.User, vaultOwnerID string) bool
	Capabilities(user *types.User) access.Capabilities
}

type AuthzInterface interface {
	AssignVaultOwner(ctx context.Context, vaultID, userID string) error
	AssignVaultMember(ctx context.Context, vaultID, userID string) error
	AssignVaultAdmin(ctx context.Context, vaultID, userID string) error
	RemoveVaultMember(ctx context.Context, vaultID, userID string) error
	RemoveVaultAdmin(ctx context.Context, vaultID, userID string) error
	DeleteVault(ctx context.Context, vaultID string) error
}

type KratosClientInterface interface {
	DisplayName(ctx context.Context, id string) (string, error)
}

type MailerInterface interface {
	SendInvitation(ctx context.Context, to string, data mail.InvitationEmail) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
