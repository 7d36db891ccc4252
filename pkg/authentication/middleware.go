// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/canonical/vault-service/internal/http/types"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

const bearerChallenge = `Bearer realm="vaults"`

// Middleware resolves the calling user from a bearer token and stores the
// user id in the request context.
type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				reject(w, "missing bearer token")
				return
			}

			userID, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("rejecting bearer token: %v", err)
				reject(w, "invalid token")
				return
			}

			if userID == "" {
				reject(w, "token has no subject")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

// bearerToken extracts the credentials of an RFC 6750 Authorization header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func reject(w http.ResponseWriter, reason string) {
	w.Header().Set("WWW-Authenticate", bearerChallenge)
	types.WriteError(w, http.StatusUnauthorized, reason)
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
