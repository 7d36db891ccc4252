// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/canonical/vault-service/internal/types"
)

// EvaluatorInterface is the single source of subscription derived capabilities,
// every gate in the service goes through it.
type EvaluatorInterface interface {
	EffectiveStatus(*types.User) types.SubscriptionStatus
	HasFullAccess(*types.User) bool
	CanCreateVaults(*types.User) bool
	CanAccessPersonalWorkspace(*types.User) bool
	CanAcceptInvitations(*types.User) bool
	CanAccessVault(user *types.User, vaultOwnerID string, isMember bool) bool
	CanManageVaultResources(user *types.User, vaultOwnerID string) bool
	CanManageOwnedResource(user *types.User, owner types.Owner, vaultOwnerID string) bool
	Capabilities(*types.User) Capabilities
}
