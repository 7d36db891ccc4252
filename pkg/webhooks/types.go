// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"time"

	"github.com/canonical/vault-service/internal/kratos"
	"github.com/canonical/vault-service/internal/types"
)

// KratosIdentity is the identity payload posted by the Kratos registration hook.
type KratosIdentity struct {
	ID     string                 `json:"id"`
	Traits map[string]interface{} `json:"traits"`
}

func (i *KratosIdentity) Email() string {
	email, _ := i.Traits["email"].(string)
	return email
}

func (i *KratosIdentity) Name() string {
	return kratos.NameFromTraits(i.Traits)
}

// SubscriptionEvent is posted by the billing provider whenever a user's plan changes.
type SubscriptionEvent struct {
	UserID         string                   `json:"user_id" validate:"required"`
	Status         types.SubscriptionStatus `json:"status" validate:"required,oneof=trial active inactive"`
	TrialExpiresAt *time.Time               `json:"trial_expires_at"`
}
