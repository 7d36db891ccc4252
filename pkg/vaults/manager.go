// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vaults

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/canonical/vault-service/internal/access"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/internal/types"
)

var _ ManagerInterface = (*Manager)(nil)

type Config struct {
	// PublicBaseURL is the origin invite links in emails and notifications point to.
	PublicBaseURL    string
	EmailSendTimeout time.Duration
}

type Manager struct {
	storage       StorageInterface
	ledger        LedgerInterface
	notifications NotificationsInterface
	evaluator     EvaluatorInterface
	authz         AuthzInterface
	kratos        KratosClientInterface
	mailer        MailerInterface
	tx            TxRunnerInterface

	cfg    Config
	emails sync.WaitGroup

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewManager(
	storage StorageInterface,
	ledger LedgerInterface,
	notifications NotificationsInterface,
	evaluator EvaluatorInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	mailer MailerInterface,
	tx TxRunnerInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Manager {
	return &Manager{
		storage:       storage,
		ledger:        ledger,
		notifications: notifications,
		evaluator:     evaluator,
		authz:         authz,
		kratos:        kratos,
		mailer:        mailer,
		tx:            tx,
		cfg:           cfg,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// Wait blocks until every invitation email started so far has been handed to
// the mailer or given up on.
func (m *Manager) Wait() {
	m.emails.Wait()
}

func lookupError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return types.ErrNotFound
	}
	return types.StorageError(op, err)
}

func (m *Manager) user(ctx context.Context, userID string) (*types.User, error) {
	user, err := m.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupError("get user", err)
	}
	return user, nil
}

func (m *Manager) vault(ctx context.Context, vaultID string) (*types.Vault, error) {
	vault, err := m.storage.GetVaultByID(ctx, vaultID)
	if err != nil {
		return nil, lookupError("get vault", err)
	}
	return vault, nil
}

// membership returns nil without an error when userID is not a member.
func (m *Manager) membership(ctx context.Context, vaultID, userID string) (*types.Membership, error) {
	membership, err := m.storage.GetMembership(ctx, vaultID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, types.StorageError("get membership", err)
	}
	return membership, nil
}

// accessibleVault loads a vault on behalf of userID. Non members get
// ErrNotFound so vault ids do not leak, an owner whose subscription lapsed
// gets ErrForbidden.
func (m *Manager) accessibleVault(ctx context.Context, vaultID, userID string) (*types.Vault, *types.Membership, error) {
	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return nil, nil, err
	}

	membership, err := m.membership(ctx, vaultID, userID)
	if err != nil {
		return nil, nil, err
	}
	if membership == nil {
		return nil, nil, types.ErrNotFound
	}

	user, err := m.user(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if !m.evaluator.CanAccessVault(user, vault.OwnerID, true) {
		return nil, nil, types.ErrForbidden
	}

	return vault, membership, nil
}

func (m *Manager) CreateVault(ctx context.Context, ownerID, name string, imageURL *string, isPrivate bool) (*types.Vault, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.CreateVault")
	defer span.End()

	owner, err := m.user(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if !m.evaluator.CanCreateVaults(owner) {
		m.logger.Security().AuthzFailure(ownerID, "vault:create")
		return nil, types.ErrForbidden
	}

	var vault *types.Vault
	err = m.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err := m.storage.CreateVault(ctx, &types.Vault{
			Name:      name,
			ImageURL:  imageURL,
			OwnerID:   ownerID,
			IsPrivate: isPrivate,
		})
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return types.ErrNotFound
		}
		if err != nil {
			return types.StorageError("create vault", err)
		}

		if _, err := m.storage.AddMember(ctx, created.ID, ownerID, types.RoleOwner); err != nil {
			return types.StorageError("add vault owner", err)
		}

		vault = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := m.authz.AssignVaultOwner(ctx, vault.ID, ownerID); err != nil {
		m.logger.Errorf("failed to assign owner of vault %s in authz: %v", vault.ID, err)
	}

	return vault, nil
}

func (m *Manager) GetVault(ctx context.Context, vaultID, userID string) (*types.Vault, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.GetVault")
	defer span.End()

	vault, _, err := m.accessibleVault(ctx, vaultID, userID)
	return vault, err
}

func (m *Manager) ListVaultsForUser(ctx context.Context, userID string) ([]*types.Vault, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.ListVaultsForUser")
	defer span.End()

	vaults, err := m.storage.ListVaultsByUserID(ctx, userID)
	if err != nil {
		return nil, types.StorageError("list vaults", err)
	}

	if vaults == nil {
		vaults = []*types.Vault{}
	}

	return vaults, nil
}

// DeleteVault removes the vault, memberships and invitations follow by cascade.
func (m *Manager) DeleteVault(ctx context.Context, vaultID, actingUserID string) error {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.DeleteVault")
	defer span.End()

	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return err
	}

	if vault.OwnerID != actingUserID {
		m.logger.Security().AuthzFailure(actingUserID, "vault:"+vaultID)
		return types.ErrForbidden
	}

	if err := m.storage.DeleteVault(ctx, vaultID); err != nil {
		return lookupError("delete vault", err)
	}

	if err := m.authz.DeleteVault(ctx, vaultID); err != nil {
		m.logger.Errorf("failed to delete vault %s from authz: %v", vaultID, err)
	}

	return nil
}

func (m *Manager) ListMembers(ctx context.Context, vaultID, userID string) ([]*types.VaultMember, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.ListMembers")
	defer span.End()

	if _, _, err := m.accessibleVault(ctx, vaultID, userID); err != nil {
		return nil, err
	}

	members, err := m.storage.ListMembersByVaultID(ctx, vaultID)
	if err != nil {
		return nil, types.StorageError("list members", err)
	}

	return members, nil
}

// RemoveMember lets the owner remove anyone but themselves. Members leave
// through LeaveVault.
func (m *Manager) RemoveMember(ctx context.Context, vaultID, userID, actingUserID string) error {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.RemoveMember")
	defer span.End()

	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return err
	}

	if userID == vault.OwnerID {
		return types.ErrForbidden
	}

	actor, err := m.user(ctx, actingUserID)
	if err != nil {
		return err
	}

	if !m.evaluator.CanManageVaultResources(actor, vault.OwnerID) {
		m.logger.Security().AuthzFailure(actingUserID, "vault:"+vaultID)
		return types.ErrForbidden
	}

	return m.dropMembership(ctx, vaultID, userID)
}

// LeaveVault removes the caller from a vault they do not own, whatever their
// own subscription status.
func (m *Manager) LeaveVault(ctx context.Context, vaultID, userID string) error {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.LeaveVault")
	defer span.End()

	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return err
	}

	if userID == vault.OwnerID {
		return types.ErrForbidden
	}

	return m.dropMembership(ctx, vaultID, userID)
}

func (m *Manager) dropMembership(ctx context.Context, vaultID, userID string) error {
	membership, err := m.membership(ctx, vaultID, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return types.ErrNotFound
	}

	if err := m.storage.RemoveMember(ctx, vaultID, userID); err != nil {
		return lookupError("remove member", err)
	}

	if err := m.authz.RemoveVaultMember(ctx, vaultID, userID); err != nil {
		m.logger.Errorf("failed to remove member %s of vault %s from authz: %v", userID, vaultID, err)
	}
	if membership.Role == types.RoleAdmin {
		if err := m.authz.RemoveVaultAdmin(ctx, vaultID, userID); err != nil {
			m.logger.Errorf("failed to remove admin %s of vault %s from authz: %v", userID, vaultID, err)
		}
	}

	return nil
}

// UpdateMemberRole promotes a member to admin or demotes an admin, the owner
// role never moves.
func (m *Manager) UpdateMemberRole(ctx context.Context, vaultID, userID string, role types.Role, actingUserID string) error {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.UpdateMemberRole")
	defer span.End()

	if role != types.RoleAdmin && role != types.RoleMember {
		return types.ErrForbidden
	}

	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return err
	}

	actor, err := m.user(ctx, actingUserID)
	if err != nil {
		return err
	}

	if userID == vault.OwnerID || !m.evaluator.CanManageVaultResources(actor, vault.OwnerID) {
		return types.ErrForbidden
	}

	if err := m.storage.UpdateMemberRole(ctx, vaultID, userID, role); err != nil {
		return lookupError("update member role", err)
	}

	if role == types.RoleAdmin {
		err = m.authz.AssignVaultAdmin(ctx, vaultID, userID)
	} else {
		err = m.authz.RemoveVaultAdmin(ctx, vaultID, userID)
	}
	if err != nil {
		m.logger.Errorf("failed to mirror role %s of %s in vault %s: %v", role, userID, vaultID, err)
	}

	return nil
}

func (m *Manager) VaultAccess(ctx context.Context, vaultID, userID string) (bool, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.VaultAccess")
	defer span.End()

	vault, err := m.vault(ctx, vaultID)
	if err != nil {
		return false, err
	}

	user, err := m.user(ctx, userID)
	if err != nil {
		return false, err
	}

	membership, err := m.membership(ctx, vaultID, userID)
	if err != nil {
		return false, err
	}

	return m.evaluator.CanAccessVault(user, vault.OwnerID, membership != nil), nil
}

func (m *Manager) Capabilities(ctx context.Context, userID string) (*access.Capabilities, error) {
	ctx, span := m.tracer.Start(ctx, "vaults.Manager.Capabilities")
	defer span.End()

	user, err := m.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	c := m.evaluator.Capabilities(user)
	return &c, nil
}
