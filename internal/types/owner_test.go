// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOwner(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		id       string
		wantKind OwnerKind
		wantErr  bool
	}{
		{name: "user owner", kind: "user", id: "u-1", wantKind: OwnerKindUser},
		{name: "vault owner", kind: "vault", id: "v-1", wantKind: OwnerKindVault},
		{name: "unknown kind", kind: "team", id: "t-1", wantErr: true},
		{name: "empty id", kind: "user", id: "", wantErr: true},
		{name: "empty kind", kind: "", id: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := ParseOwner(tt.kind, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, o.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, o.Kind())
			assert.Equal(t, tt.id, o.ID())
		})
	}
}

func TestOwnerAccessors(t *testing.T) {
	u := UserOwner("u-1")
	id, ok := u.UserID()
	assert.True(t, ok)
	assert.Equal(t, "u-1", id)
	_, ok = u.VaultID()
	assert.False(t, ok)
	assert.Equal(t, "user:u-1", u.String())

	v := VaultOwner("v-1")
	id, ok = v.VaultID()
	assert.True(t, ok)
	assert.Equal(t, "v-1", id)
	_, ok = v.UserID()
	assert.False(t, ok)

	assert.True(t, Owner{}.IsZero())
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection reset")
	err := StorageError("list notifications", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "list notifications")
}

func TestInvitationHelpers(t *testing.T) {
	receiver := "u-2"
	inv := &Invitation{Status: InvitationPending, ReceiverID: &receiver}

	assert.True(t, inv.IsPending())
	assert.True(t, inv.IsReceiver("u-2"))
	assert.False(t, inv.IsReceiver("u-3"))

	inv.ReceiverID = nil
	assert.False(t, inv.IsReceiver("u-2"))
}
