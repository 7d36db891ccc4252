// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vaults

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/vault-service/internal/access"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/mail"
	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package vaults -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package vaults -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package vaults -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package vaults -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

var (
	_ StorageInterface       = (*MockStorageInterface)(nil)
	_ LedgerInterface        = (*MockLedgerInterface)(nil)
	_ NotificationsInterface = (*MockNotificationsInterface)(nil)
	_ TxRunnerInterface      = (*MockTxRunnerInterface)(nil)
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	activeOwner = &types.User{ID: "u-1", Email: "owner@x.com", Name: "Olive", SubscriptionStatus: types.SubscriptionActive}
	lapsedOwner = &types.User{ID: "u-1", Email: "owner@x.com", SubscriptionStatus: types.SubscriptionInactive}
	expiredUser = &types.User{ID: "u-2", Email: "member@x.com", SubscriptionStatus: types.SubscriptionTrial, TrialExpiresAt: timePtr(now.Add(-time.Hour))}
	sharedVault = &types.Vault{ID: "v-1", Name: "Family", OwnerID: "u-1"}
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}

type managerMocks struct {
	storage       *MockStorageInterface
	ledger        *MockLedgerInterface
	notifications *MockNotificationsInterface
	authz         *MockAuthzInterface
	kratos        *MockKratosClientInterface
	mailer        *MockMailerInterface
	tx            *MockTxRunnerInterface
	logger        *MockLoggerInterface
	security      *MockSecurityLoggerInterface
}

func setupManager(t *testing.T, spans ...string) (*Manager, *managerMocks) {
	ctrl := gomock.NewController(t)

	m := &managerMocks{
		storage:       NewMockStorageInterface(ctrl),
		ledger:        NewMockLedgerInterface(ctrl),
		notifications: NewMockNotificationsInterface(ctrl),
		authz:         NewMockAuthzInterface(ctrl),
		kratos:        NewMockKratosClientInterface(ctrl),
		mailer:        NewMockMailerInterface(ctrl),
		tx:            NewMockTxRunnerInterface(ctrl),
		logger:        NewMockLoggerInterface(ctrl),
		security:      NewMockSecurityLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)

	for _, span := range spans {
		mockTracer.EXPECT().Start(gomock.Any(), span).
			Return(context.Background(), trace.SpanFromContext(context.Background()))
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	evaluator := access.NewEvaluator(func() time.Time { return now }, logging.NewNoopLogger())
	cfg := Config{PublicBaseURL: "https://vaults.example.com", EmailSendTimeout: time.Second}

	mgr := NewManager(
		m.storage, m.ledger, m.notifications, evaluator, m.authz, m.kratos, m.mailer, m.tx,
		cfg, mockTracer, NewMockMonitorInterface(ctrl), m.logger,
	)

	return mgr, m
}

func TestManager_CreateVault(t *testing.T) {
	tests := []struct {
		name        string
		owner       *types.User
		setupMocks  func(*managerMocks)
		expectedErr error
	}{
		{
			name:  "active owner",
			owner: activeOwner,
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().CreateVault(gomock.Any(), gomock.Any()).Return(sharedVault, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "v-1", "u-1", types.RoleOwner).Return("m-1", nil)
				m.authz.EXPECT().AssignVaultOwner(gomock.Any(), "v-1", "u-1").Return(nil)
			},
		},
		{
			name:  "authz failure does not fail creation",
			owner: activeOwner,
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().CreateVault(gomock.Any(), gomock.Any()).Return(sharedVault, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "v-1", "u-1", types.RoleOwner).Return("m-1", nil)
				m.authz.EXPECT().AssignVaultOwner(gomock.Any(), "v-1", "u-1").Return(errors.New("fga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "lapsed owner",
			owner: lapsedOwner,
			setupMocks: func(m *managerMocks) {
				m.security.EXPECT().AuthzFailure("u-1", "vault:create")
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:  "owner membership insert fails",
			owner: activeOwner,
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().CreateVault(gomock.Any(), gomock.Any()).Return(sharedVault, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "v-1", "u-1", types.RoleOwner).Return("", errors.New("db down"))
			},
			expectedErr: types.ErrStorage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.CreateVault")
			m.storage.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(tc.owner, nil)
			tc.setupMocks(m)

			vault, err := mgr.CreateVault(context.Background(), "u-1", "Family", nil, false)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && vault.ID != "v-1" {
				t.Errorf("expected v-1, got %s", vault.ID)
			}
		})
	}
}

func TestManager_Invite(t *testing.T) {
	tests := []struct {
		name        string
		sender      *types.User
		membership  *types.Membership
		setupMocks  func(*managerMocks)
		expectedErr error
	}{
		{
			// an invitee without an account gets an email but no notification
			name:       "unregistered invitee",
			sender:     activeOwner,
			membership: &types.Membership{Role: types.RoleOwner},
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Create(gomock.Any(), "v-1", "u-1", "new@x.com").
					Return(&types.Invitation{ID: "inv-1", TargetName: "Family", ReceiverEmail: "new@x.com", Status: types.InvitationPending}, nil)
				m.kratos.EXPECT().DisplayName(gomock.Any(), "u-1").Return("Olive O.", nil)
				m.mailer.EXPECT().SendInvitation(gomock.Any(), "new@x.com", mail.InvitationEmail{
					InviterName: "Olive O.",
					VaultName:   "Family",
					InviteLink:  "https://vaults.example.com/invitations/inv-1",
				}).Return(nil)
			},
		},
		{
			name:       "registered invitee is notified",
			sender:     activeOwner,
			membership: &types.Membership{Role: types.RoleOwner},
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Create(gomock.Any(), "v-1", "u-1", "new@x.com").
					Return(&types.Invitation{ID: "inv-1", TargetName: "Family", ReceiverID: strPtr("u-2"), ReceiverEmail: "new@x.com"}, nil)
				m.notifications.EXPECT().Create(
					gomock.Any(), "u-2", types.NotificationVaultInvite, "Olive invited you to join Family",
					gomock.Any(), gomock.Any(),
				).Return(&types.Notification{ID: "n-1"}, nil)
				m.kratos.EXPECT().DisplayName(gomock.Any(), "u-1").Return("", errors.New("kratos down"))
				m.mailer.EXPECT().SendInvitation(gomock.Any(), "new@x.com", gomock.Any()).Return(nil)
			},
		},
		{
			name:       "email and notification failures are swallowed",
			sender:     expiredUser,
			membership: &types.Membership{Role: types.RoleAdmin},
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Create(gomock.Any(), "v-1", "u-2", "new@x.com").
					Return(&types.Invitation{ID: "inv-1", ReceiverID: strPtr("u-5"), ReceiverEmail: "new@x.com"}, nil)
				m.notifications.EXPECT().Create(gomock.Any(), "u-5", types.NotificationVaultInvite, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("notification error"))
				m.kratos.EXPECT().DisplayName(gomock.Any(), "u-2").Return("Max", nil)
				m.mailer.EXPECT().SendInvitation(gomock.Any(), "new@x.com", gomock.Any()).Return(errors.New("smtp down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
			},
		},
		{
			name:       "plain member cannot invite",
			sender:     expiredUser,
			membership: &types.Membership{Role: types.RoleMember},
			setupMocks: func(m *managerMocks) {
				m.security.EXPECT().AuthzFailure("u-2", "vault:v-1")
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "non member cannot invite",
			sender: expiredUser,
			setupMocks: func(m *managerMocks) {
				m.security.EXPECT().AuthzFailure("u-2", "vault:v-1")
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:       "lapsed owner cannot invite",
			sender:     lapsedOwner,
			membership: &types.Membership{Role: types.RoleOwner},
			setupMocks: func(m *managerMocks) {
				m.security.EXPECT().AuthzFailure("u-1", "vault:v-1")
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:       "already member",
			sender:     activeOwner,
			membership: &types.Membership{Role: types.RoleOwner},
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Create(gomock.Any(), "v-1", "u-1", "new@x.com").Return(nil, types.ErrAlreadyMember)
			},
			expectedErr: types.ErrAlreadyMember,
		},
		{
			name:       "private vault",
			sender:     activeOwner,
			membership: &types.Membership{Role: types.RoleOwner},
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Create(gomock.Any(), "v-1", "u-1", "new@x.com").Return(nil, types.ErrPrivateVaultNoInvites)
			},
			expectedErr: types.ErrPrivateVaultNoInvites,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.Invite")

			m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
			m.storage.EXPECT().GetUserByID(gomock.Any(), tc.sender.ID).Return(tc.sender, nil)
			if tc.membership != nil {
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", tc.sender.ID).Return(tc.membership, nil)
			} else {
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", tc.sender.ID).Return(nil, storage.ErrNotFound)
			}
			tc.setupMocks(m)

			inv, err := mgr.Invite(context.Background(), "v-1", tc.sender.ID, "new@x.com")
			mgr.Wait()

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && inv.ID != "inv-1" {
				t.Errorf("expected inv-1, got %s", inv.ID)
			}
		})
	}
}

func TestManager_AcceptInvitation(t *testing.T) {
	pending := &types.Invitation{ID: "inv-1", TargetID: "v-1", TargetName: "Family", SenderID: "u-1", ReceiverID: strPtr("u-2"), ReceiverEmail: "new@x.com", Status: types.InvitationPending}
	accepted := *pending
	accepted.Status = types.InvitationAccepted

	tests := []struct {
		name        string
		setupMocks  func(*managerMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *managerMocks) {
				gomock.InOrder(
					m.ledger.EXPECT().Claim(gomock.Any(), "inv-1", "u-2").Return(pending, nil),
					m.storage.EXPECT().AddMember(gomock.Any(), "v-1", "u-2", types.RoleMember).Return("m-2", nil),
					m.ledger.EXPECT().Accept(gomock.Any(), "inv-1", "u-2").Return(&accepted, nil),
				)
				m.notifications.EXPECT().MarkReadByRelatedID(gomock.Any(), "inv-1", "u-2").Return(nil)
				m.notifications.EXPECT().Create(
					gomock.Any(), "u-1", types.NotificationVaultInviteAccepted, "new@x.com accepted your invitation to Family",
					gomock.Any(), gomock.Any(),
				).Return(&types.Notification{}, nil)
				m.authz.EXPECT().AssignVaultMember(gomock.Any(), "v-1", "u-2").Return(nil)
			},
		},
		{
			name: "follow ups never fail the acceptance",
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Claim(gomock.Any(), "inv-1", "u-2").Return(pending, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "v-1", "u-2", types.RoleMember).Return("m-2", nil)
				m.ledger.EXPECT().Accept(gomock.Any(), "inv-1", "u-2").Return(&accepted, nil)
				m.notifications.EXPECT().MarkReadByRelatedID(gomock.Any(), "inv-1", "u-2").Return(errors.New("notification error"))
				m.notifications.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("notification error"))
				m.authz.EXPECT().AssignVaultMember(gomock.Any(), "v-1", "u-2").Return(errors.New("fga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
			},
		},
		{
			// the membership insert conflicts, the status flip never runs
			name: "already member rolls back",
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Claim(gomock.Any(), "inv-1", "u-2").Return(pending, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "v-1", "u-2", types.RoleMember).Return("", storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrAlreadyMember,
		},
		{
			name: "vault deleted meanwhile",
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Claim(gomock.Any(), "inv-1", "u-2").Return(pending, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "v-1", "u-2", types.RoleMember).Return("", storage.ErrForeignKeyViolation)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "already processed",
			setupMocks: func(m *managerMocks) {
				m.ledger.EXPECT().Claim(gomock.Any(), "inv-1", "u-2").Return(nil, types.ErrInvalidOrProcessed)
			},
			expectedErr: types.ErrInvalidOrProcessed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.AcceptInvitation")
			tc.setupMocks(m)

			inv, err := mgr.AcceptInvitation(context.Background(), "inv-1", "u-2")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && inv.Status != types.InvitationAccepted {
				t.Errorf("expected accepted, got %s", inv.Status)
			}
		})
	}
}

func TestManager_DeclineInvitation(t *testing.T) {
	mgr, m := setupManager(t, "vaults.Manager.DeclineInvitation")

	m.ledger.EXPECT().Decline(gomock.Any(), "inv-1", "u-2").
		Return(&types.Invitation{ID: "inv-1", Status: types.InvitationDeclined}, nil)
	m.notifications.EXPECT().MarkReadByRelatedID(gomock.Any(), "inv-1", "u-2").Return(nil)

	inv, err := mgr.DeclineInvitation(context.Background(), "inv-1", "u-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Status != types.InvitationDeclined {
		t.Errorf("expected declined, got %s", inv.Status)
	}
}

func TestManager_RemoveMember(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		actor       string
		setupMocks  func(*managerMocks)
		expectedErr error
	}{
		{
			name:        "owner cannot be removed",
			userID:      "u-1",
			actor:       "u-1",
			setupMocks:  func(*managerMocks) {},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "member cannot remove others",
			userID: "u-3",
			actor:  "u-2",
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u-2").Return(expiredUser, nil)
				m.security.EXPECT().AuthzFailure("u-2", "vault:v-1")
			},
			expectedErr: types.ErrForbidden,
		},
		{
			// members leave through LeaveVault
			name:   "member cannot remove themselves",
			userID: "u-2",
			actor:  "u-2",
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u-2").Return(expiredUser, nil)
				m.security.EXPECT().AuthzFailure("u-2", "vault:v-1")
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "owner removes admin",
			userID: "u-2",
			actor:  "u-1",
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(activeOwner, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-2").Return(&types.Membership{Role: types.RoleAdmin}, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), "v-1", "u-2").Return(nil)
				m.authz.EXPECT().RemoveVaultMember(gomock.Any(), "v-1", "u-2").Return(nil)
				m.authz.EXPECT().RemoveVaultAdmin(gomock.Any(), "v-1", "u-2").Return(nil)
			},
		},
		{
			name:   "not a member",
			userID: "u-9",
			actor:  "u-1",
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(activeOwner, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.RemoveMember")
			m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
			tc.setupMocks(m)

			err := mgr.RemoveMember(context.Background(), "v-1", tc.userID, tc.actor)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestManager_LeaveVault(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		setupMocks  func(*managerMocks)
		expectedErr error
	}{
		{
			// a member whose trial expired can still leave
			name:   "expired member leaves",
			userID: "u-2",
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-2").Return(&types.Membership{Role: types.RoleMember}, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), "v-1", "u-2").Return(nil)
				m.authz.EXPECT().RemoveVaultMember(gomock.Any(), "v-1", "u-2").Return(nil)
			},
		},
		{
			name:        "owner cannot leave",
			userID:      "u-1",
			setupMocks:  func(*managerMocks) {},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "not a member",
			userID: "u-9",
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.LeaveVault")
			m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
			tc.setupMocks(m)

			err := mgr.LeaveVault(context.Background(), "v-1", tc.userID)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestManager_DeleteVault(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		mgr, m := setupManager(t, "vaults.Manager.DeleteVault")
		m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
		m.storage.EXPECT().DeleteVault(gomock.Any(), "v-1").Return(nil)
		m.authz.EXPECT().DeleteVault(gomock.Any(), "v-1").Return(nil)

		if err := mgr.DeleteVault(context.Background(), "v-1", "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		mgr, m := setupManager(t, "vaults.Manager.DeleteVault")
		m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
		m.security.EXPECT().AuthzFailure("u-2", "vault:v-1")

		if err := mgr.DeleteVault(context.Background(), "v-1", "u-2"); !errors.Is(err, types.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestManager_UpdateMemberRole(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		role        types.Role
		setupMocks  func(*managerMocks)
		expectedErr error
	}{
		{
			name:   "promote",
			userID: "u-2",
			role:   types.RoleAdmin,
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(activeOwner, nil)
				m.storage.EXPECT().UpdateMemberRole(gomock.Any(), "v-1", "u-2", types.RoleAdmin).Return(nil)
				m.authz.EXPECT().AssignVaultAdmin(gomock.Any(), "v-1", "u-2").Return(nil)
			},
		},
		{
			name:   "demote",
			userID: "u-2",
			role:   types.RoleMember,
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(activeOwner, nil)
				m.storage.EXPECT().UpdateMemberRole(gomock.Any(), "v-1", "u-2", types.RoleMember).Return(nil)
				m.authz.EXPECT().RemoveVaultAdmin(gomock.Any(), "v-1", "u-2").Return(nil)
			},
		},
		{
			name:        "owner role cannot be granted",
			userID:      "u-2",
			role:        types.RoleOwner,
			setupMocks:  func(*managerMocks) {},
			expectedErr: types.ErrForbidden,
		},
		{
			name:   "unknown member",
			userID: "u-9",
			role:   types.RoleAdmin,
			setupMocks: func(m *managerMocks) {
				m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(activeOwner, nil)
				m.storage.EXPECT().UpdateMemberRole(gomock.Any(), "v-1", "u-9", types.RoleAdmin).Return(storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.UpdateMemberRole")
			tc.setupMocks(m)

			err := mgr.UpdateMemberRole(context.Background(), "v-1", tc.userID, tc.role, "u-1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestManager_GetVault(t *testing.T) {
	tests := []struct {
		name        string
		user        *types.User
		membership  *types.Membership
		expectedErr error
	}{
		{
			// collaboration survives the member's own billing lapse
			name:       "expired member of someone else's vault",
			user:       expiredUser,
			membership: &types.Membership{Role: types.RoleMember},
		},
		{
			name:        "lapsed owner",
			user:        lapsedOwner,
			membership:  &types.Membership{Role: types.RoleOwner},
			expectedErr: types.ErrForbidden,
		},
		{
			name:        "stranger",
			user:        &types.User{ID: "u-7", SubscriptionStatus: types.SubscriptionActive},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.GetVault")
			m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
			if tc.membership != nil {
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", tc.user.ID).Return(tc.membership, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), tc.user.ID).Return(tc.user, nil)
			} else {
				m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", tc.user.ID).Return(nil, storage.ErrNotFound)
			}

			_, err := mgr.GetVault(context.Background(), "v-1", tc.user.ID)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestManager_VaultAccess(t *testing.T) {
	mgr, m := setupManager(t, "vaults.Manager.VaultAccess")

	m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
	m.storage.EXPECT().GetUserByID(gomock.Any(), "u-7").Return(&types.User{ID: "u-7", SubscriptionStatus: types.SubscriptionActive}, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-7").Return(nil, storage.ErrNotFound)

	allowed, err := mgr.VaultAccess(context.Background(), "v-1", "u-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Error("expected non member to be denied")
	}
}

func TestManager_ListInvitations(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		mgr, m := setupManager(t, "vaults.Manager.ListInvitations")
		m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
		m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-2").Return(&types.Membership{Role: types.RoleAdmin}, nil)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "u-2").Return(expiredUser, nil)
		m.ledger.EXPECT().ListForVault(gomock.Any(), "v-1").Return([]*types.Invitation{{ID: "inv-1"}}, nil)

		list, err := mgr.ListInvitations(context.Background(), "v-1", "u-2")
		if err != nil || len(list) != 1 {
			t.Fatalf("expected one invitation, got %v %v", list, err)
		}
	})

	t.Run("member", func(t *testing.T) {
		mgr, m := setupManager(t, "vaults.Manager.ListInvitations")
		m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
		m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-2").Return(&types.Membership{Role: types.RoleMember}, nil)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "u-2").Return(expiredUser, nil)

		if _, err := mgr.ListInvitations(context.Background(), "v-1", "u-2"); !errors.Is(err, types.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestManager_Capabilities(t *testing.T) {
	mgr, m := setupManager(t, "vaults.Manager.Capabilities")
	m.storage.EXPECT().GetUserByID(gomock.Any(), "u-2").Return(expiredUser, nil)

	c, err := mgr.Capabilities(context.Background(), "u-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HasFullAccess || c.CanCreateVaults || !c.CanAcceptInvitations {
		t.Errorf("unexpected capabilities %+v", c)
	}
	if c.EffectiveStatus != types.SubscriptionInactive {
		t.Errorf("expected inactive, got %s", c.EffectiveStatus)
	}
}

func TestManager_ListVaultsForUser(t *testing.T) {
	tests := []struct {
		name        string
		stored      []*types.Vault
		err         error
		expectedLen int
		expectedErr error
	}{
		{name: "member of one vault", stored: []*types.Vault{sharedVault}, expectedLen: 1},
		{name: "no vaults yields an empty list"},
		{name: "storage failure", err: errors.New("db down"), expectedErr: types.ErrStorage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mgr, m := setupManager(t, "vaults.Manager.ListVaultsForUser")
			m.storage.EXPECT().ListVaultsByUserID(gomock.Any(), "u-1").Return(tc.stored, tc.err)

			vaults, err := mgr.ListVaultsForUser(context.Background(), "u-1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if err != nil {
				return
			}
			if vaults == nil || len(vaults) != tc.expectedLen {
				t.Errorf("expected %d vaults, got %v", tc.expectedLen, vaults)
			}
		})
	}
}

func TestManager_ListMembers(t *testing.T) {
	members := []*types.VaultMember{
		{UserID: "u-1", Email: "owner@x.com", Role: types.RoleOwner},
		{UserID: "u-2", Email: "member@x.com", Role: types.RoleMember},
	}

	t.Run("member sees the roster", func(t *testing.T) {
		mgr, m := setupManager(t, "vaults.Manager.ListMembers")
		m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
		m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-2").Return(&types.Membership{Role: types.RoleMember}, nil)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "u-2").Return(expiredUser, nil)
		m.storage.EXPECT().ListMembersByVaultID(gomock.Any(), "v-1").Return(members, nil)

		got, err := mgr.ListMembers(context.Background(), "v-1", "u-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 members, got %d", len(got))
		}
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		mgr, m := setupManager(t, "vaults.Manager.ListMembers")
		m.storage.EXPECT().GetVaultByID(gomock.Any(), "v-1").Return(sharedVault, nil)
		m.storage.EXPECT().GetMembership(gomock.Any(), "v-1", "u-7").Return(nil, storage.ErrNotFound)

		if _, err := mgr.ListMembers(context.Background(), "v-1", "u-7"); !errors.Is(err, types.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
