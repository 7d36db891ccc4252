// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vaults

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/canonical/vault-service/internal/mail"
	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/types"
)

// canInvite reports whether member may invite others to vault. Admins always
// can, the owner only while their subscription gives full access.
func (m *Manager) canInvite(user *types.User, vault *types.Vault, membership *types.Membership) bool {
	if membership == nil {
		return false
	}

	switch membership.Role {
	case types.RoleOwner:
		return m.evaluator.CanManageVaultResources(user, vault.OwnerID)
	case types.RoleAdmin:
		return true
	}

	return false
}

func (m *Manager) link(path ...string) *string {
	link, err := url.JoinPath(m.cfg.PublicBaseURL, path...)
	if err != nil {
		m.logger.Warnf("failed to build link from %q: %v", m.cfg.PublicBaseURL, err)
		return nil
	}
	return &link
}

func displayName(user *types.User) string {
	if user.Name != "" {
		return user.Name
	}
	return user.Email
}

func (m *Manager) Invite(ctx context.Context, vaultID, senderID, receiverEmail string) (*types.Invitation, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.Invite")
	defer span.End()

	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	sender, err := m.user(ctx, senderID)
	if err != nil {
		return nil, err
	}

	membership, err := m.membership(ctx, vaultID, senderID)
	if err != nil {
		return nil, err
	}

	if !m.canInvite(sender, vault, membership) {
		m.logger.Security().AuthzFailure(senderID, "vault:"+vaultID)
		return nil, types.ErrForbidden
	}

	inv, err := m.ledger.Create(ctx, vaultID, senderID, receiverEmail)
	if err != nil {
		return nil, err
	}

	link := m.link("invitations", inv.ID)

	if inv.ReceiverID != nil {
		_, err := m.notifications.Create(
			ctx,
			*inv.ReceiverID,
			types.NotificationVaultInvite,
			fmt.Sprintf("%s invited you to join %s", displayName(sender), inv.TargetName),
			link,
			&inv.ID,
		)
		if err != nil {
			m.logger.Errorf("failed to notify invitee of invitation %s: %v", inv.ID, err)
		}
	}

	inviteLink := ""
	if link != nil {
		inviteLink = *link
	}
	m.sendInvitationEmail(ctx, inv, sender, inviteLink)

	return inv, nil
}

// sendInvitationEmail delivers in the background. The request context is
// detached so the email outlives the request, bounded by EmailSendTimeout.
func (m *Manager) sendInvitationEmail(ctx context.Context, inv *types.Invitation, sender *types.User, inviteLink string) {
	ctx = context.WithoutCancel(ctx)

	m.emails.Add(1)
	go func() {
		defer m.emails.Done()

		ctx, cancel := context.WithTimeout(ctx, m.cfg.EmailSendTimeout)
		defer cancel()

		inviter := displayName(sender)
		if name, err := m.kratos.DisplayName(ctx, sender.ID); err != nil {
			m.logger.Debugf("falling back to stored name for %s: %v", sender.ID, err)
		} else if name != "" {
			inviter = name
		}

		err := m.mailer.SendInvitation(ctx, inv.ReceiverEmail, mail.InvitationEmail{
			InviterName: inviter,
			VaultName:   inv.TargetName,
			InviteLink:  inviteLink,
		})
		if err != nil {
			m.logger.Errorf("failed to send invitation email for %s: %v", inv.ID, err)
		}
	}()
}

func (m *Manager) ListInvitations(ctx context.Context, vaultID, userID string) ([]*types.Invitation, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.ListInvitations")
	defer span.End()

	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	membership, err := m.membership(ctx, vaultID, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, types.ErrNotFound
	}

	user, err := m.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !m.canInvite(user, vault, membership) {
		return nil, types.ErrForbidden
	}

	return m.ledger.ListForVault(ctx, vaultID)
}

// AcceptInvitation claims the invitation, adds the membership and flips the
// status in one transaction. Any failure leaves the invitation pending.
func (m *Manager) AcceptInvitation(ctx context.Context, invitationID, userID string) (*types.Invitation, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.AcceptInvitation")
	defer span.End()

	var accepted *types.Invitation
	err := m.tx.WithTx(ctx, func(ctx context.Context) error {
		inv, err := m.ledger.Claim(ctx, invitationID, userID)
		if err != nil {
			return err
		}

		_, err = m.storage.AddMember(ctx, inv.TargetID, userID, types.RoleMember)
		switch {
		case errors.Is(err, storage.ErrDuplicateKey):
			return types.ErrAlreadyMember
		case errors.Is(err, storage.ErrForeignKeyViolation):
			return types.ErrNotFound
		case err != nil:
			return types.StorageError("add member", err)
		}

		accepted, err = m.ledger.Accept(ctx, invitationID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := m.notifications.MarkReadByRelatedID(ctx, invitationID, userID); err != nil {
		m.logger.Errorf("failed to mark notifications of invitation %s read: %v", invitationID, err)
	}

	_, err = m.notifications.Create(
		ctx,
		accepted.SenderID,
		types.NotificationVaultInviteAccepted,
		fmt.Sprintf("%s accepted your invitation to %s", accepted.ReceiverEmail, accepted.TargetName),
		m.link("vaults", accepted.TargetID),
		&accepted.ID,
	)
	if err != nil {
		m.logger.Errorf("failed to notify sender of accepted invitation %s: %v", invitationID, err)
	}

	if err := m.authz.AssignVaultMember(ctx, accepted.TargetID, userID); err != nil {
		m.logger.Errorf("failed to assign member of vault %s in authz: %v", accepted.TargetID, err)
	}

	return accepted, nil
}

func (m *Manager) DeclineInvitation(ctx context.Context, invitationID, userID string) (*types.Invitation, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.DeclineInvitation")
	defer span.End()

	declined, err := m.ledger.Decline(ctx, invitationID, userID)
	if err != nil {
		return nil, err
	}

	if err := m.notifications.MarkReadByRelatedID(ctx, invitationID, userID); err != nil {
		m.logger.Errorf("failed to mark notifications of invitation %s read: %v", invitationID, err)
	}

	return declined, nil
}
