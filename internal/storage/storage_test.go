// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/vault-service/internal/db"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	return NewStorage(db.NewDBClientFromDB(sqlDB, tracer, monitor, logger), tracer, monitor, logger), mock
}

var (
	vaultRowColumns        = []string{"id", "name", "image_url", "owner_id", "is_private", "created_at"}
	invitationRowColumns   = []string{"id", "type", "target_id", "target_name", "sender_id", "receiver_id", "receiver_email", "status", "created_at"}
	notificationRowColumns = []string{"id", "user_id", "type", "message", "link", "related_id", "is_read", "created_at"}
)

func TestCreateVault(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO vaults \(id,name,image_url,owner_id,is_private\) VALUES .* RETURNING`).
		WithArgs(sqlmock.AnyArg(), "Family", sqlmock.AnyArg(), "u-1", false).
		WillReturnRows(sqlmock.NewRows(vaultRowColumns).AddRow("v-1", "Family", nil, "u-1", false, now))

	v, err := s.CreateVault(context.Background(), &types.Vault{Name: "Family", OwnerID: "u-1"})
	require.NoError(t, err)
	assert.Equal(t, "v-1", v.ID)
	assert.Nil(t, v.ImageURL)
	assert.Equal(t, now, v.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVaultUnknownOwner(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`INSERT INTO vaults`).
		WillReturnError(&pgconn.PgError{Code: pgErrCodeForeignKeyViolation})

	_, err := s.CreateVault(context.Background(), &types.Vault{Name: "Family", OwnerID: "ghost"})
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestGetVaultByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT id, name, image_url, owner_id, is_private, created_at FROM vaults WHERE id = \$1`).
					WithArgs("v-1").
					WillReturnRows(sqlmock.NewRows(vaultRowColumns).AddRow("v-1", "Family", "https://img", "u-1", true, time.Now()))
			},
		},
		{
			name: "missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`FROM vaults WHERE id = \$1`).WithArgs("v-1").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tt.setup(mock)

			v, err := s.GetVaultByID(context.Background(), "v-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, v.ImageURL)
			assert.Equal(t, "https://img", *v.ImageURL)
			assert.True(t, v.IsPrivate)
		})
	}
}

func TestAddMember(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "inserted"},
		{name: "already member", err: &pgconn.PgError{Code: pgErrCodeUniqueViolation}, wantErr: ErrDuplicateKey},
		{name: "vault gone", err: &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}, wantErr: ErrForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			exp := mock.ExpectExec(`INSERT INTO memberships \(id,vault_id,user_id,role\)`).
				WithArgs(sqlmock.AnyArg(), "v-1", "u-2", "member")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			id, err := s.AddMember(context.Background(), "v-1", "u-2", types.RoleMember)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, id)
		})
	}
}

func TestRemoveMemberKeepsOwner(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`DELETE FROM memberships WHERE user_id = \$1 AND vault_id = \$2 AND role <> \$3`).
		WithArgs("u-1", "v-1", "owner").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.RemoveMember(context.Background(), "v-1", "u-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMemberRole(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE memberships SET role = \$1 WHERE user_id = \$2 AND vault_id = \$3 AND role <> \$4`).
		WithArgs("admin", "u-2", "v-1", "owner").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpdateMemberRole(context.Background(), "v-1", "u-2", types.RoleAdmin)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMembersByVaultID(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT u.id, u.email, u.name, m.role FROM memberships m JOIN users u`).
		WithArgs("v-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role"}).
			AddRow("u-1", "owner@example.com", "Owner", "owner").
			AddRow("u-2", "member@example.com", "Member", "member"))

	members, err := s.ListMembersByVaultID(context.Background(), "v-1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, types.RoleOwner, members[0].Role)
	assert.Equal(t, "member@example.com", members[1].Email)
}

func TestGetUserByEmailNormalizes(t *testing.T) {
	s, mock := newTestStorage(t)
	expires := time.Now().Add(time.Hour)

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("bob@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "subscription_status", "trial_expires_at", "created_at"}).
			AddRow("u-2", "bob@example.com", "Bob", "trial", expires, time.Now()))

	u, err := s.GetUserByEmail(context.Background(), "  Bob@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, types.SubscriptionTrial, u.SubscriptionStatus)
	require.NotNil(t, u.TrialExpiresAt)
	assert.Equal(t, expires, *u.TrialExpiresAt)
}

func TestUpdateSubscriptionUnknownUser(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE users SET subscription_status = \$1, trial_expires_at = \$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateSubscription(context.Background(), "ghost", types.SubscriptionActive, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateInvitationPendingConflict(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`INSERT INTO invitations`).
		WithArgs(sqlmock.AnyArg(), "vault", "v-1", "Family", "u-1", sqlmock.AnyArg(), "bob@example.com", "pending").
		WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation})

	_, err := s.CreateInvitation(context.Background(), &types.Invitation{
		Type:          types.InvitationTypeVault,
		TargetID:      "v-1",
		TargetName:    "Family",
		SenderID:      "u-1",
		ReceiverEmail: "Bob@example.com",
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInvitationForUpdateLocks(t *testing.T) {
	s, mock := newTestStorage(t)
	receiver := "u-2"

	mock.ExpectQuery(`FROM invitations WHERE id = \$1 FOR UPDATE`).
		WithArgs("i-1").
		WillReturnRows(sqlmock.NewRows(invitationRowColumns).
			AddRow("i-1", "vault", "v-1", "Family", "u-1", receiver, "bob@example.com", "pending", time.Now()))

	inv, err := s.GetInvitationForUpdate(context.Background(), "i-1")
	require.NoError(t, err)
	assert.True(t, inv.IsPending())
	assert.True(t, inv.IsReceiver("u-2"))
}

func TestTransitionInvitation(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name: "pending row transitions",
			rows: sqlmock.NewRows(invitationRowColumns).
				AddRow("i-1", "vault", "v-1", "Family", "u-1", "u-2", "bob@example.com", "accepted", time.Now()),
		},
		{
			name:    "already processed",
			rows:    sqlmock.NewRows(invitationRowColumns),
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			mock.ExpectQuery(`UPDATE invitations SET status = \$1 WHERE id = \$2 AND receiver_id = \$3 AND status = \$4 RETURNING`).
				WithArgs("accepted", "i-1", "u-2", "pending").
				WillReturnRows(tt.rows)

			inv, err := s.TransitionInvitation(context.Background(), "i-1", "u-2", types.InvitationAccepted)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.InvitationAccepted, inv.Status)
		})
	}
}

func TestLinkInvitationsByEmail(t *testing.T) {
	s, mock := newTestStorage(t)

	// accepted or declined rows orphaned by a deleted account must not be claimed
	mock.ExpectExec(`UPDATE invitations SET receiver_id = \$1 WHERE receiver_email = \$2 AND receiver_id IS NULL AND status = \$3`).
		WithArgs("u-9", "new@example.com", "pending").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := s.LinkInvitationsByEmail(context.Background(), "New@example.com", "u-9")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestCountPendingInvitationsByEmail(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM invitations WHERE receiver_email = \$1 AND target_id = \$2 AND status = \$3`).
		WithArgs("bob@example.com", "v-1", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	n, err := s.CountPendingInvitationsByEmail(context.Background(), "v-1", "bob@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestListNotificationsByUserID(t *testing.T) {
	s, mock := newTestStorage(t)
	related := "i-1"

	mock.ExpectQuery(`FROM notifications WHERE user_id = \$1 ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 20`).
		WithArgs("u-2").
		WillReturnRows(sqlmock.NewRows(notificationRowColumns).
			AddRow("n-1", "u-2", "vault_invite", "join Family", nil, related, false, time.Now()))

	list, err := s.ListNotificationsByUserID(context.Background(), "u-2", 10, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].RelatedID)
	assert.Equal(t, related, *list[0].RelatedID)
	assert.Nil(t, list[0].Link)
	assert.False(t, list[0].IsRead)
}

func TestMarkNotificationReadForeignUser(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE notifications SET is_read = \$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs(true, "n-1", "u-3").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.MarkNotificationRead(context.Background(), "n-1", "u-3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkNotificationsReadByRelatedID(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE notifications SET is_read = \$1 WHERE is_read = \$2 AND related_id = \$3 AND user_id = \$4`).
		WithArgs(true, false, "i-1", "u-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := s.MarkNotificationsReadByRelatedID(context.Background(), "i-1", "u-2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestDeleteNotificationsByRelatedID(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`DELETE FROM notifications WHERE related_id = \$1`).
		WithArgs("i-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := s.DeleteNotificationsByRelatedID(context.Background(), "i-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
