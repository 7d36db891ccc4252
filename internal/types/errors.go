// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Domain errors returned by the vault, invitation and notification services.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrAlreadyMember         = errors.New("user is already a member of the vault")
	ErrDuplicateInvitation   = errors.New("a pending invitation already exists")
	ErrInvalidOrProcessed    = errors.New("invitation is invalid or already processed")
	ErrPrivateVaultNoInvites = errors.New("private vaults do not accept invitations")
	ErrStorage               = errors.New("storage error")
)

// StorageError wraps an opaque persistence failure so callers can match ErrStorage.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
