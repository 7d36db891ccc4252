// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyToken = errors.New("empty bearer token")

// NoopVerifier trusts the bearer token and uses it as the user id.
// Only meant for local development.
type NoopVerifier struct{}

func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	userID := strings.TrimSpace(rawToken)
	if userID == "" {
		return "", ErrEmptyToken
	}

	return userID, nil
}

func NewNoopVerifier() *NoopVerifier {
	return new(NoopVerifier)
}
