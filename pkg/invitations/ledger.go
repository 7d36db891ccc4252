// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/internal/types"
)

var _ LedgerInterface = (*Ledger)(nil)

// Ledger owns the invitation state machine. Terminal states are never
// reopened, cancellation and deletion remove the row.
type Ledger struct {
	storage       StorageInterface
	tx            TxRunnerInterface
	notifications NotificationsInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewLedger(
	storage StorageInterface,
	tx TxRunnerInterface,
	notifications NotificationsInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Ledger {
	return &Ledger{
		storage:       storage,
		tx:            tx,
		notifications: notifications,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// lookupError turns a storage miss into types.ErrNotFound and anything else
// into an opaque storage error.
func lookupError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return types.ErrNotFound
	}
	return types.StorageError(op, err)
}

func (l *Ledger) Create(ctx context.Context, vaultID, senderID, receiverEmail string) (*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.Create")
	defer span.End()

	email := normalizeEmail(receiverEmail)

	vault, err := l.storage.GetVaultByID(ctx, vaultID)
	if err != nil {
		return nil, lookupError("get vault", err)
	}

	if vault.IsPrivate {
		return nil, types.ErrPrivateVaultNoInvites
	}

	if _, err := l.storage.GetUserByID(ctx, senderID); err != nil {
		return nil, lookupError("get sender", err)
	}

	var receiverID *string

	receiver, err := l.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		receiverID = &receiver.ID

		_, err := l.storage.GetMembership(ctx, vaultID, receiver.ID)
		if err == nil {
			return nil, types.ErrAlreadyMember
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, types.StorageError("get membership", err)
		}

		pending, err := l.storage.CountPendingInvitationsByReceiver(ctx, vaultID, receiver.ID)
		if err != nil {
			return nil, types.StorageError("count pending invitations", err)
		}
		if pending > 0 {
			return nil, types.ErrDuplicateInvitation
		}
	case !errors.Is(err, storage.ErrNotFound):
		return nil, types.StorageError("get receiver", err)
	}

	pending, err := l.storage.CountPendingInvitationsByEmail(ctx, vaultID, email)
	if err != nil {
		return nil, types.StorageError("count pending invitations", err)
	}
	if pending > 0 {
		return nil, types.ErrDuplicateInvitation
	}

	inv, err := l.storage.CreateInvitation(ctx, &types.Invitation{
		Type:          types.InvitationTypeVault,
		TargetID:      vault.ID,
		TargetName:    vault.Name,
		SenderID:      senderID,
		ReceiverID:    receiverID,
		ReceiverEmail: email,
	})
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		// a concurrent invite won the race on the pending unique index
		return nil, types.ErrDuplicateInvitation
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, types.ErrNotFound
	case err != nil:
		return nil, types.StorageError("create invitation", err)
	}

	return inv, nil
}

func (l *Ledger) LinkByEmail(ctx context.Context, email, userID string) (int64, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.LinkByEmail")
	defer span.End()

	linked, err := l.storage.LinkInvitationsByEmail(ctx, normalizeEmail(email), userID)
	if err != nil {
		return 0, types.StorageError("link invitations", err)
	}

	if linked > 0 {
		l.logger.Debugf("linked %d pending invitations to user %s", linked, userID)
	}

	return linked, nil
}

// Claim locks the invitation row for the rest of the surrounding transaction
// and checks that actingUserID may resolve it.
func (l *Ledger) Claim(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.Claim")
	defer span.End()

	inv, err := l.storage.GetInvitationForUpdate(ctx, invitationID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.ErrInvalidOrProcessed
	}
	if err != nil {
		return nil, types.StorageError("lock invitation", err)
	}

	if !inv.IsReceiver(actingUserID) || !inv.IsPending() {
		return nil, types.ErrInvalidOrProcessed
	}

	return inv, nil
}

func (l *Ledger) Accept(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.Accept")
	defer span.End()

	return l.transition(ctx, invitationID, actingUserID, types.InvitationAccepted)
}

func (l *Ledger) Decline(ctx context.Context, invitationID, actingUserID string) (*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.Decline")
	defer span.End()

	return l.transition(ctx, invitationID, actingUserID, types.InvitationDeclined)
}

func (l *Ledger) transition(ctx context.Context, invitationID, actingUserID string, to types.InvitationStatus) (*types.Invitation, error) {
	inv, err := l.storage.TransitionInvitation(ctx, invitationID, actingUserID, to)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, types.ErrInvalidOrProcessed
	}
	if err != nil {
		return nil, types.StorageError("transition invitation", err)
	}

	return inv, nil
}

func (l *Ledger) Cancel(ctx context.Context, invitationID, actingUserID string) error {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.Cancel")
	defer span.End()

	err := l.tx.WithTx(ctx, func(ctx context.Context) error {
		inv, err := l.storage.GetInvitationForUpdate(ctx, invitationID)
		if err != nil {
			return lookupError("lock invitation", err)
		}

		if inv.SenderID != actingUserID {
			vault, err := l.storage.GetVaultByID(ctx, inv.TargetID)
			if err != nil {
				return lookupError("get vault", err)
			}
			if vault.OwnerID != actingUserID {
				return types.ErrForbidden
			}
		}

		if !inv.IsPending() {
			return types.ErrInvalidOrProcessed
		}

		return l.deleteRow(ctx, invitationID)
	})
	if err != nil {
		return err
	}

	if err := l.notifications.DeleteByRelatedID(ctx, invitationID); err != nil {
		l.logger.Errorf("failed to clean up notifications for cancelled invitation %s: %v", invitationID, err)
	}

	return nil
}

func (l *Ledger) Delete(ctx context.Context, invitationID, actingUserID string) error {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.Delete")
	defer span.End()

	var wasPending bool
	err := l.tx.WithTx(ctx, func(ctx context.Context) error {
		inv, err := l.storage.GetInvitationForUpdate(ctx, invitationID)
		if err != nil {
			return lookupError("lock invitation", err)
		}

		if !inv.IsReceiver(actingUserID) {
			return types.ErrForbidden
		}

		wasPending = inv.IsPending()
		return l.deleteRow(ctx, invitationID)
	})
	if err != nil {
		return err
	}

	// processed invitations keep the sender's acceptance notice
	if !wasPending {
		return nil
	}

	if err := l.notifications.DeleteByRelatedID(ctx, invitationID); err != nil {
		l.logger.Errorf("failed to clean up notifications for deleted invitation %s: %v", invitationID, err)
	}

	return nil
}

func (l *Ledger) deleteRow(ctx context.Context, invitationID string) error {
	if err := l.storage.DeleteInvitation(ctx, invitationID); err != nil {
		return lookupError("delete invitation", err)
	}
	return nil
}

func (l *Ledger) Get(ctx context.Context, invitationID string) (*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.Get")
	defer span.End()

	inv, err := l.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return nil, lookupError("get invitation", err)
	}

	return inv, nil
}

func (l *Ledger) ListPendingForUser(ctx context.Context, userID string) ([]*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.ListPendingForUser")
	defer span.End()

	return l.list("list pending invitations", func() ([]*types.Invitation, error) {
		return l.storage.ListPendingInvitationsByReceiver(ctx, userID)
	})
}

func (l *Ledger) ListSentBy(ctx context.Context, userID string) ([]*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.ListSentBy")
	defer span.End()

	return l.list("list sent invitations", func() ([]*types.Invitation, error) {
		return l.storage.ListInvitationsBySender(ctx, userID)
	})
}

func (l *Ledger) ListForVault(ctx context.Context, vaultID string) ([]*types.Invitation, error) {
	ctx, span := l.tracer.Start(ctx, "invitations.Ledger.ListForVault")
	defer span.End()

	return l.list("list vault invitations", func() ([]*types.Invitation, error) {
		return l.storage.ListInvitationsByTarget(ctx, vaultID)
	})
}

func (l *Ledger) list(op string, fetch func() ([]*types.Invitation, error)) ([]*types.Invitation, error) {
	list, err := fetch()
	if err != nil {
		return nil, types.StorageError(op, err)
	}

	if list == nil {
		list = []*types.Invitation{}
	}

	return list, nil
}
