// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/vault-service/internal/logging"
)

// NoopMailer only logs, it is used when no SMTP host is configured.
type NoopMailer struct {
	logger logging.LoggerInterface
}

func (m *NoopMailer) SendInvitation(ctx context.Context, to string, data InvitationEmail) error {
	m.logger.Debugf("smtp disabled, skipping invitation email to %s for vault %s", to, data.VaultName)
	return nil
}

func NewNoopMailer(logger logging.LoggerInterface) *NoopMailer {
	m := new(NoopMailer)
	m.logger = logger

	return m
}
