// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/vault-service/internal/db"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/pkg/invitations"
	"github.com/canonical/vault-service/pkg/metrics"
	"github.com/canonical/vault-service/pkg/notifications"
	"github.com/canonical/vault-service/pkg/status"
	"github.com/canonical/vault-service/pkg/vaults"
	"github.com/canonical/vault-service/pkg/webhooks"
)

// Services groups the domain services exposed over HTTP.
type Services struct {
	Vaults        vaults.ManagerInterface
	Invitations   invitations.LedgerInterface
	Notifications notifications.ServiceInterface
	Webhooks      webhooks.ServiceInterface
}

func NewRouter(
	services Services,
	authenticator AuthenticatorInterface,
	webhookAPIKey string,
	corsOrigins []string,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	// identity provisioning and billing run in a single request transaction
	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		webhooks.NewAPI(services.Webhooks, webhookAPIKey, tracer, monitor, logger).RegisterEndpoints(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticator.Authenticate())

		vaults.NewAPI(services.Vaults, tracer, monitor, logger).RegisterEndpoints(r)
		invitations.NewAPI(services.Invitations, tracer, monitor, logger).RegisterEndpoints(r)
		notifications.NewAPI(services.Notifications, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
