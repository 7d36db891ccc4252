// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

var (
	_ StorageInterface       = (*MockStorageInterface)(nil)
	_ NotificationsInterface = (*MockNotificationsInterface)(nil)
	_ TxRunnerInterface      = (*MockTxRunnerInterface)(nil)
)

type ledgerMocks struct {
	storage       *MockStorageInterface
	tx            *MockTxRunnerInterface
	notifications *MockNotificationsInterface
	logger        *MockLoggerInterface
}

func setupLedger(t *testing.T, span string) (*Ledger, *ledgerMocks) {
	ctrl := gomock.NewController(t)

	m := &ledgerMocks{
		storage:       NewMockStorageInterface(ctrl),
		tx:            NewMockTxRunnerInterface(ctrl),
		notifications: NewMockNotificationsInterface(ctrl),
		logger:        NewMockLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), span).
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	// transactions run the closure inline
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	return NewLedger(m.storage, m.tx, m.notifications, mockTracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func strPtr(s string) *string {
	return &s
}

func TestLedger_Create(t *testing.T) {
	vault := &types.Vault{ID: "v-1", Name: "Family", OwnerID: "u-1"}
	sender := &types.User{ID: "u-1", Email: "owner@x.com"}
	registered := &types.User{ID: "u-3", Email: "member@x.com"}
	dbErr := errors.New("db down")

	tests := []struct {
		name        string
		email       string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
		check       func(*testing.T, *types.Invitation)
	}{
		{
			name:  "unregistered receiver",
			email: "  New@X.com ",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(sender, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "new@x.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CountPendingInvitationsByEmail(gomock.Any(), "v-1", "new@x.com").Return(int64(0), nil)
				s.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						created := *inv
						created.ID = "inv-1"
						created.Status = types.InvitationPending
						return &created, nil
					},
				)
			},
			check: func(t *testing.T, inv *types.Invitation) {
				if inv.ReceiverID != nil {
					t.Errorf("expected no receiver id, got %s", *inv.ReceiverID)
				}
				if inv.ReceiverEmail != "new@x.com" || inv.TargetName != "Family" || inv.Type != types.InvitationTypeVault {
					t.Errorf("unexpected invitation %+v", inv)
				}
				if !inv.IsPending() {
					t.Errorf("expected pending, got %s", inv.Status)
				}
			},
		},
		{
			name:  "registered receiver",
			email: "member@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(sender, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "member@x.com").Return(registered, nil)
				s.EXPECT().GetMembership(gomock.Any(), "v-1", "u-3").Return(nil, storage.ErrNotFound)
				s.EXPECT().CountPendingInvitationsByReceiver(gomock.Any(), "v-1", "u-3").Return(int64(0), nil)
				s.EXPECT().CountPendingInvitationsByEmail(gomock.Any(), "v-1", "member@x.com").Return(int64(0), nil)
				s.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						return inv, nil
					},
				)
			},
			check: func(t *testing.T, inv *types.Invitation) {
				if !inv.IsReceiver("u-3") {
					t.Errorf("expected receiver u-3, got %v", inv.ReceiverID)
				}
			},
		},
		{
			name:  "vault not found",
			email: "new@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:  "private vault",
			email: "new@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(&types.Vault{ID: "v-1", IsPrivate: true}, nil)
			},
			expectedErr: types.ErrPrivateVaultNoInvites,
		},
		{
			name:  "sender not found",
			email: "new@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:  "already member",
			email: "member@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(sender, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "member@x.com").Return(registered, nil)
				s.EXPECT().GetMembership(gomock.Any(), "v-1", "u-3").Return(&types.Membership{Role: types.RoleMember}, nil)
			},
			expectedErr: types.ErrAlreadyMember,
		},
		{
			name:  "pending for receiver id",
			email: "member@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(sender, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "member@x.com").Return(registered, nil)
				s.EXPECT().GetMembership(gomock.Any(), "v-1", "u-3").Return(nil, storage.ErrNotFound)
				s.EXPECT().CountPendingInvitationsByReceiver(gomock.Any(), "v-1", "u-3").Return(int64(1), nil)
			},
			expectedErr: types.ErrDuplicateInvitation,
		},
		{
			name:  "pending for email",
			email: "new@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(sender, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "new@x.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CountPendingInvitationsByEmail(gomock.Any(), "v-1", "new@x.com").Return(int64(1), nil)
			},
			expectedErr: types.ErrDuplicateInvitation,
		},
		{
			name:  "unique index race",
			email: "new@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(sender, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "new@x.com").Return(nil, storage.ErrNotFound)
				s.EXPECT().CountPendingInvitationsByEmail(gomock.Any(), "v-1", "new@x.com").Return(int64(0), nil)
				s.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrDuplicateInvitation,
		},
		{
			name:  "storage failure",
			email: "new@x.com",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				s.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(sender, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "new@x.com").Return(nil, dbErr)
			},
			expectedErr: types.ErrStorage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, m := setupLedger(t, "invitations.Ledger.Create")
			tc.setupMocks(m.storage)

			inv, err := l.Create(context.Background(), "v-1", "u-1", tc.email)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, inv)
		})
	}
}

func TestLedger_LinkByEmail(t *testing.T) {
	l, m := setupLedger(t, "invitations.Ledger.LinkByEmail")

	m.storage.EXPECT().LinkInvitationsByEmail(gomock.Any(), "new@x.com", "u-2").Return(int64(2), nil)
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

	linked, err := l.LinkByEmail(context.Background(), "New@x.com", "u-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linked != 2 {
		t.Errorf("expected 2 linked invitations, got %d", linked)
	}
}

func TestLedger_Claim(t *testing.T) {
	tests := []struct {
		name        string
		inv         *types.Invitation
		lookupErr   error
		expectedErr error
	}{
		{
			name: "pending for receiver",
			inv:  &types.Invitation{ID: "inv-1", ReceiverID: strPtr("u-2"), Status: types.InvitationPending},
		},
		{
			name:        "missing",
			lookupErr:   storage.ErrNotFound,
			expectedErr: types.ErrInvalidOrProcessed,
		},
		{
			name:        "someone else's",
			inv:         &types.Invitation{ID: "inv-1", ReceiverID: strPtr("u-9"), Status: types.InvitationPending},
			expectedErr: types.ErrInvalidOrProcessed,
		},
		{
			name:        "unlinked",
			inv:         &types.Invitation{ID: "inv-1", Status: types.InvitationPending},
			expectedErr: types.ErrInvalidOrProcessed,
		},
		{
			name:        "already accepted",
			inv:         &types.Invitation{ID: "inv-1", ReceiverID: strPtr("u-2"), Status: types.InvitationAccepted},
			expectedErr: types.ErrInvalidOrProcessed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, m := setupLedger(t, "invitations.Ledger.Claim")
			m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").Return(tc.inv, tc.lookupErr)

			inv, err := l.Claim(context.Background(), "inv-1", "u-2")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && inv.ID != "inv-1" {
				t.Errorf("expected inv-1, got %s", inv.ID)
			}
		})
	}
}

func TestLedger_AcceptDecline(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		l, m := setupLedger(t, "invitations.Ledger.Accept")
		m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", "u-2", types.InvitationAccepted).
			Return(&types.Invitation{ID: "inv-1", Status: types.InvitationAccepted}, nil)

		inv, err := l.Accept(context.Background(), "inv-1", "u-2")
		if err != nil || inv.Status != types.InvitationAccepted {
			t.Fatalf("expected accepted invitation, got %v %v", inv, err)
		}
	})

	t.Run("decline already processed", func(t *testing.T) {
		l, m := setupLedger(t, "invitations.Ledger.Decline")
		m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", "u-2", types.InvitationDeclined).
			Return(nil, storage.ErrNotFound)

		if _, err := l.Decline(context.Background(), "inv-1", "u-2"); !errors.Is(err, types.ErrInvalidOrProcessed) {
			t.Fatalf("expected ErrInvalidOrProcessed, got %v", err)
		}
	})
}

func TestLedger_Cancel(t *testing.T) {
	pending := &types.Invitation{ID: "inv-1", TargetID: "v-1", SenderID: "u-4", Status: types.InvitationPending}
	vault := &types.Vault{ID: "v-1", OwnerID: "u-1"}

	tests := []struct {
		name        string
		actor       string
		setupMocks  func(*ledgerMocks)
		expectedErr error
	}{
		{
			name:  "sender cancels",
			actor: "u-4",
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").Return(pending, nil)
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
				m.notifications.EXPECT().DeleteByRelatedID(gomock.Any(), "inv-1").Return(nil)
			},
		},
		{
			name:  "vault owner cancels",
			actor: "u-1",
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").Return(pending, nil)
				m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
				m.notifications.EXPECT().DeleteByRelatedID(gomock.Any(), "inv-1").Return(nil)
			},
		},
		{
			name:  "notification cleanup failure is swallowed",
			actor: "u-4",
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").Return(pending, nil)
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
				m.notifications.EXPECT().DeleteByRelatedID(gomock.Any(), "inv-1").Return(errors.New("notification error"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "stranger",
			actor: "u-7",
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").Return(pending, nil)
				m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(vault, nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:  "already declined",
			actor: "u-4",
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").
					Return(&types.Invitation{ID: "inv-1", SenderID: "u-4", Status: types.InvitationDeclined}, nil)
			},
			expectedErr: types.ErrInvalidOrProcessed,
		},
		{
			name:  "missing",
			actor: "u-4",
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, m := setupLedger(t, "invitations.Ledger.Cancel")
			tc.setupMocks(m)

			err := l.Cancel(context.Background(), "inv-1", tc.actor)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestLedger_Delete(t *testing.T) {
	tests := []struct {
		name        string
		inv         *types.Invitation
		setupMocks  func(*ledgerMocks)
		expectedErr error
	}{
		{
			name: "receiver removes accepted invitation",
			inv:  &types.Invitation{ID: "inv-1", ReceiverID: strPtr("u-2"), Status: types.InvitationAccepted},
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
			},
		},
		{
			name: "receiver removes pending invitation",
			inv:  &types.Invitation{ID: "inv-1", ReceiverID: strPtr("u-2"), Status: types.InvitationPending},
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
				m.notifications.EXPECT().DeleteByRelatedID(gomock.Any(), "inv-1").Return(nil)
			},
		},
		{
			name: "notification cleanup failure is swallowed",
			inv:  &types.Invitation{ID: "inv-1", ReceiverID: strPtr("u-2"), Status: types.InvitationPending},
			setupMocks: func(m *ledgerMocks) {
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
				m.notifications.EXPECT().DeleteByRelatedID(gomock.Any(), "inv-1").Return(errors.New("notification error"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "sender cannot delete",
			inv:         &types.Invitation{ID: "inv-1", SenderID: "u-2", ReceiverID: strPtr("u-3")},
			setupMocks:  func(*ledgerMocks) {},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, m := setupLedger(t, "invitations.Ledger.Delete")
			m.storage.EXPECT().GetInvitationForUpdate(gomock.Any(), "inv-1").Return(tc.inv, nil)
			tc.setupMocks(m)

			err := l.Delete(context.Background(), "inv-1", "u-2")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestLedger_Lists(t *testing.T) {
	t.Run("pending never nil", func(t *testing.T) {
		l, m := setupLedger(t, "invitations.Ledger.ListPendingForUser")
		m.storage.EXPECT().ListPendingInvitationsByReceiver(gomock.Any(), "u-2").Return(nil, nil)

		list, err := l.ListPendingForUser(context.Background(), "u-2")
		if err != nil || list == nil {
			t.Fatalf("expected empty list, got %v %v", list, err)
		}
	})

	t.Run("sent", func(t *testing.T) {
		l, m := setupLedger(t, "invitations.Ledger.ListSentBy")
		m.storage.EXPECT().ListInvitationsBySender(gomock.Any(), "u-1").Return([]*types.Invitation{{ID: "inv-1"}}, nil)

		list, err := l.ListSentBy(context.Background(), "u-1")
		if err != nil || len(list) != 1 {
			t.Fatalf("expected one invitation, got %v %v", list, err)
		}
	})

	t.Run("vault storage failure", func(t *testing.T) {
		l, m := setupLedger(t, "invitations.Ledger.ListForVault")
		m.storage.EXPECT().ListInvitationsByTarget(gomock.Any(), "v-1").Return(nil, errors.New("db down"))

		if _, err := l.ListForVault(context.Background(), "v-1"); !errors.Is(err, types.ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})
}
