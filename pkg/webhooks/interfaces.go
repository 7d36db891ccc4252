// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"time"

	"github.com/canonical/vault-service/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	UpdateSubscription(ctx context.Context, userID string, status types.SubscriptionStatus, trialExpiresAt *time.Time) error
}

// LinkerInterface attaches pending invitations to a newly registered account.
type LinkerInterface interface {
	LinkByEmail(ctx context.Context, email, userID string) (int64, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email, name string) (*types.User, error)
	HandleSubscription(ctx context.Context, event *SubscriptionEvent) error
}
