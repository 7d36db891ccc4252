// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// PingerInterface is satisfied by the database client
type PingerInterface interface {
	Ping(context.Context) error
}
