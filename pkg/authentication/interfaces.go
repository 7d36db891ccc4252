// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT and returns its subject, the vault user ID
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
