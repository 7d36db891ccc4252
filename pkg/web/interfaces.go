// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import "net/http"

// AuthenticatorInterface resolves the calling user and stores it in the request context.
type AuthenticatorInterface interface {
	Authenticate() func(http.Handler) http.Handler
}
