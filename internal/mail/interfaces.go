// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type MailerInterface interface {
	SendInvitation(ctx context.Context, to string, data InvitationEmail) error
}
