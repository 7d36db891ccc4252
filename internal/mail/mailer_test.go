// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

func newTestMailer() *Mailer {
	logger := logging.NewNoopLogger()
	return NewMailer(
		Config{Host: "localhost", Port: 2525, From: "vaults@example.com"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestInvitationMessage(t *testing.T) {
	m := newTestMailer()

	msg, err := m.invitationMessage("bob@example.com", InvitationEmail{
		InviterName: "Alice",
		VaultName:   "Family",
		InviteLink:  "https://app.example.com/invitations",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "bob@example.com")
	assert.Contains(t, raw, "Subject:")
	assert.True(t, strings.Contains(raw, "text/html"), "expected an html alternative")
}

func TestInvitationHTMLEscapesNames(t *testing.T) {
	m := newTestMailer()

	var buf bytes.Buffer
	require.NoError(t, m.html.Execute(&buf, InvitationEmail{InviterName: "Alice <script>", VaultName: "Family"}))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "Alice &lt;script&gt;")
}

func TestInvitationMessageInvalidRecipient(t *testing.T) {
	m := newTestMailer()

	_, err := m.invitationMessage("not-an-email", InvitationEmail{VaultName: "Family"})
	assert.Error(t, err)
}

func TestNoopMailer(t *testing.T) {
	m := NewNoopMailer(logging.NewNoopLogger())

	assert.NoError(t, m.SendInvitation(context.Background(), "bob@example.com", InvitationEmail{VaultName: "Family"}))
}
