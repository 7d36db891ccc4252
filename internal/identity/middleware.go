// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"github.com/canonical/vault-service/internal/http/types"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/pkg/authentication"
)

// HeaderName is the header the identity proxy sets with the authenticated Kratos identity ID.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

// Middleware trusts the identity proxy in front of the service and maps the
// forwarded identity header onto the request user.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.Authenticate")
			defer span.End()

			userID := strings.TrimSpace(r.Header.Get(HeaderName))
			if userID == "" {
				m.logger.Debugf("request to %s without %s header", r.URL.Path, HeaderName)
				types.WriteError(w, http.StatusUnauthorized, "missing identity")
				return
			}

			next.ServeHTTP(w, r.WithContext(authentication.WithUserID(ctx, userID)))
		})
	}
}
