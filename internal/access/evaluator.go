// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"time"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/types"
)

var _ EvaluatorInterface = (*Evaluator)(nil)

// Capabilities is the capability matrix derived from a single evaluation.
type Capabilities struct {
	EffectiveStatus            types.SubscriptionStatus `json:"effective_status"`
	HasFullAccess              bool                     `json:"has_full_access"`
	CanCreateVaults            bool                     `json:"can_create_vaults"`
	CanAccessPersonalWorkspace bool                     `json:"can_access_personal_workspace"`
	CanAcceptInvitations       bool                     `json:"can_accept_invitations"`
	TrialExpiresAt             *time.Time               `json:"trial_expires_at,omitempty"`
}

type Evaluator struct {
	now func() time.Time

	logger logging.LoggerInterface
}

// EffectiveStatus downgrades an expired trial to inactive. A trial without an
// expiry stays a trial.
func (e *Evaluator) EffectiveStatus(user *types.User) types.SubscriptionStatus {
	if user == nil {
		return types.SubscriptionInactive
	}

	switch user.SubscriptionStatus {
	case types.SubscriptionActive:
		return types.SubscriptionActive
	case types.SubscriptionTrial:
		if user.TrialExpiresAt == nil {
			e.logger.Warnf("user %s is on trial without an expiry date, treating trial as valid", user.ID)
			return types.SubscriptionTrial
		}
		if user.TrialExpiresAt.Before(e.now()) {
			return types.SubscriptionInactive
		}
		return types.SubscriptionTrial
	case types.SubscriptionInactive:
		return types.SubscriptionInactive
	}

	e.logger.Warnf("user %s has unknown subscription status %q", user.ID, user.SubscriptionStatus)
	return types.SubscriptionInactive
}

func (e *Evaluator) HasFullAccess(user *types.User) bool {
	return hasFullAccess(e.EffectiveStatus(user))
}

func (e *Evaluator) CanCreateVaults(user *types.User) bool {
	return e.HasFullAccess(user)
}

func (e *Evaluator) CanAccessPersonalWorkspace(user *types.User) bool {
	return e.HasFullAccess(user)
}

// CanAcceptInvitations is true for every user, joining someone else's vault is never gated.
func (e *Evaluator) CanAcceptInvitations(*types.User) bool {
	return true
}

// CanAccessVault lets non-owner members in regardless of their own billing,
// only the owner's access to their vault depends on the subscription.
func (e *Evaluator) CanAccessVault(user *types.User, vaultOwnerID string, isMember bool) bool {
	if user == nil {
		return false
	}

	if user.ID == vaultOwnerID {
		return e.HasFullAccess(user)
	}

	return isMember
}

func (e *Evaluator) CanManageVaultResources(user *types.User, vaultOwnerID string) bool {
	if user == nil || user.ID != vaultOwnerID {
		return false
	}

	return e.HasFullAccess(user)
}

// CanManageOwnedResource applies the ownership rules to a goal or transaction owner.
// vaultOwnerID is only consulted for vault owned resources.
func (e *Evaluator) CanManageOwnedResource(user *types.User, owner types.Owner, vaultOwnerID string) bool {
	if user == nil || owner.IsZero() {
		return false
	}

	if id, ok := owner.UserID(); ok {
		return id == user.ID && e.HasFullAccess(user)
	}

	return e.CanManageVaultResources(user, vaultOwnerID)
}

func (e *Evaluator) Capabilities(user *types.User) Capabilities {
	status := e.EffectiveStatus(user)
	full := hasFullAccess(status)

	c := Capabilities{
		EffectiveStatus:            status,
		HasFullAccess:              full,
		CanCreateVaults:            full,
		CanAccessPersonalWorkspace: full,
		CanAcceptInvitations:       e.CanAcceptInvitations(user),
	}

	if user != nil && user.SubscriptionStatus == types.SubscriptionTrial {
		c.TrialExpiresAt = user.TrialExpiresAt
	}

	return c
}

func hasFullAccess(status types.SubscriptionStatus) bool {
	return status == types.SubscriptionActive || status == types.SubscriptionTrial
}

func NewEvaluator(now func() time.Time, logger logging.LoggerInterface) *Evaluator {
	e := new(Evaluator)

	e.now = now
	if e.now == nil {
		e.now = time.Now
	}
	e.logger = logger

	return e
}
