// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/types"
)

type warnRecorder struct {
	*logging.Logger

	warnings []string
}

func (w *warnRecorder) Warnf(format string, args ...interface{}) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEvaluator() (*Evaluator, *warnRecorder) {
	rec := &warnRecorder{Logger: logging.NewNoopLogger()}
	return NewEvaluator(func() time.Time { return fixedNow }, rec), rec
}

func at(t time.Time) *time.Time {
	return &t
}

func TestEvaluator_EffectiveStatus(t *testing.T) {
	tests := []struct {
		name         string
		user         *types.User
		expected     types.SubscriptionStatus
		fullAccess   bool
		wantWarnings int
	}{
		{
			name:       "active",
			user:       &types.User{ID: "u", SubscriptionStatus: types.SubscriptionActive},
			expected:   types.SubscriptionActive,
			fullAccess: true,
		},
		{
			name:       "trial not yet expired",
			user:       &types.User{ID: "u", SubscriptionStatus: types.SubscriptionTrial, TrialExpiresAt: at(fixedNow.Add(time.Hour))},
			expected:   types.SubscriptionTrial,
			fullAccess: true,
		},
		{
			name:       "trial expired",
			user:       &types.User{ID: "u", SubscriptionStatus: types.SubscriptionTrial, TrialExpiresAt: at(fixedNow.Add(-time.Second))},
			expected:   types.SubscriptionInactive,
			fullAccess: false,
		},
		{
			name:         "trial without expiry is a valid trial",
			user:         &types.User{ID: "u", SubscriptionStatus: types.SubscriptionTrial},
			expected:     types.SubscriptionTrial,
			fullAccess:   true,
			wantWarnings: 1,
		},
		{
			name:       "inactive",
			user:       &types.User{ID: "u", SubscriptionStatus: types.SubscriptionInactive},
			expected:   types.SubscriptionInactive,
			fullAccess: false,
		},
		{
			name:         "unknown status",
			user:         &types.User{ID: "u", SubscriptionStatus: "gold"},
			expected:     types.SubscriptionInactive,
			fullAccess:   false,
			wantWarnings: 1,
		},
		{
			name:       "nil user",
			user:       nil,
			expected:   types.SubscriptionInactive,
			fullAccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newTestEvaluator()

			assert.Equal(t, tt.expected, e.EffectiveStatus(tt.user))
			assert.Len(t, rec.warnings, tt.wantWarnings)

			assert.Equal(t, tt.fullAccess, e.HasFullAccess(tt.user))
			assert.Equal(t, tt.fullAccess, e.CanCreateVaults(tt.user))
			assert.Equal(t, tt.fullAccess, e.CanAccessPersonalWorkspace(tt.user))
			assert.True(t, e.CanAcceptInvitations(tt.user))
		})
	}
}

func TestEvaluator_FullAccessMatchesEffectiveStatus(t *testing.T) {
	e, _ := newTestEvaluator()

	statuses := []types.SubscriptionStatus{types.SubscriptionActive, types.SubscriptionTrial, types.SubscriptionInactive}
	expiries := []*time.Time{nil, at(fixedNow.Add(-48 * time.Hour)), at(fixedNow), at(fixedNow.Add(48 * time.Hour))}

	for _, s := range statuses {
		for _, exp := range expiries {
			u := &types.User{ID: "u", SubscriptionStatus: s, TrialExpiresAt: exp}
			eff := e.EffectiveStatus(u)
			want := eff == types.SubscriptionActive || eff == types.SubscriptionTrial
			assert.Equal(t, want, e.HasFullAccess(u), "status=%s expiry=%v", s, exp)
		}
	}
}

func TestEvaluator_CanAccessVault(t *testing.T) {
	expired := &types.User{ID: "member", SubscriptionStatus: types.SubscriptionTrial, TrialExpiresAt: at(fixedNow.Add(-time.Hour))}
	inactive := &types.User{ID: "member", SubscriptionStatus: types.SubscriptionInactive}
	active := &types.User{ID: "member", SubscriptionStatus: types.SubscriptionActive}
	inactiveOwner := &types.User{ID: "owner", SubscriptionStatus: types.SubscriptionInactive}
	activeOwner := &types.User{ID: "owner", SubscriptionStatus: types.SubscriptionActive}

	tests := []struct {
		name     string
		user     *types.User
		isMember bool
		expected bool
	}{
		{name: "expired trial member", user: expired, isMember: true, expected: true},
		{name: "inactive member", user: inactive, isMember: true, expected: true},
		{name: "active member", user: active, isMember: true, expected: true},
		{name: "active non member", user: active, isMember: false, expected: false},
		{name: "inactive owner", user: inactiveOwner, isMember: true, expected: false},
		{name: "active owner", user: activeOwner, isMember: true, expected: true},
		{name: "nil user", user: nil, isMember: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEvaluator()
			assert.Equal(t, tt.expected, e.CanAccessVault(tt.user, "owner", tt.isMember))
		})
	}
}

func TestEvaluator_CanManageVaultResources(t *testing.T) {
	e, _ := newTestEvaluator()

	activeOwner := &types.User{ID: "owner", SubscriptionStatus: types.SubscriptionActive}
	expiredOwner := &types.User{ID: "owner", SubscriptionStatus: types.SubscriptionTrial, TrialExpiresAt: at(fixedNow.Add(-time.Minute))}
	activeMember := &types.User{ID: "member", SubscriptionStatus: types.SubscriptionActive}

	assert.True(t, e.CanManageVaultResources(activeOwner, "owner"))
	assert.False(t, e.CanManageVaultResources(expiredOwner, "owner"))
	assert.False(t, e.CanManageVaultResources(activeMember, "owner"))
	assert.False(t, e.CanManageVaultResources(nil, "owner"))
}

func TestEvaluator_CanManageOwnedResource(t *testing.T) {
	e, _ := newTestEvaluator()

	active := &types.User{ID: "u-1", SubscriptionStatus: types.SubscriptionActive}
	inactive := &types.User{ID: "u-1", SubscriptionStatus: types.SubscriptionInactive}

	assert.True(t, e.CanManageOwnedResource(active, types.UserOwner("u-1"), ""))
	assert.False(t, e.CanManageOwnedResource(active, types.UserOwner("u-2"), ""))
	assert.False(t, e.CanManageOwnedResource(inactive, types.UserOwner("u-1"), ""))
	assert.True(t, e.CanManageOwnedResource(active, types.VaultOwner("v-1"), "u-1"))
	assert.False(t, e.CanManageOwnedResource(active, types.VaultOwner("v-1"), "u-9"))
	assert.False(t, e.CanManageOwnedResource(active, types.Owner{}, "u-1"))
}

func TestEvaluator_Capabilities(t *testing.T) {
	e, _ := newTestEvaluator()
	expiry := fixedNow.Add(-time.Hour)

	c := e.Capabilities(&types.User{ID: "u", SubscriptionStatus: types.SubscriptionTrial, TrialExpiresAt: &expiry})

	assert.Equal(t, types.SubscriptionInactive, c.EffectiveStatus)
	assert.False(t, c.HasFullAccess)
	assert.False(t, c.CanCreateVaults)
	assert.False(t, c.CanAccessPersonalWorkspace)
	assert.True(t, c.CanAcceptInvitations)
	assert.Equal(t, &expiry, c.TrialExpiresAt)

	c = e.Capabilities(&types.User{ID: "u", SubscriptionStatus: types.SubscriptionActive})
	assert.True(t, c.HasFullAccess)
	assert.Nil(t, c.TrialExpiresAt)
}

func TestNewEvaluatorDefaultsClock(t *testing.T) {
	e := NewEvaluator(nil, logging.NewNoopLogger())
	future := time.Now().Add(time.Hour)

	assert.Equal(t, types.SubscriptionTrial, e.EffectiveStatus(&types.User{SubscriptionStatus: types.SubscriptionTrial, TrialExpiresAt: &future}))
}
