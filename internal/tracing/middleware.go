// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
)

// probePaths are polled by the orchestrator and the metrics scraper, tracing
// them only adds noise.
var probePaths = []string{"/api/v0/status", "/api/v0/ready", "/api/v0/metrics"}

// Middleware wraps the http stack with OpenTelemetry instrumentation.
type Middleware struct {
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (mdw *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(
		handler,
		serviceName,
		otelhttp.WithFilter(traced),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

func traced(r *http.Request) bool {
	for _, p := range probePaths {
		if strings.HasPrefix(r.URL.Path, p) {
			return false
		}
	}
	return true
}

func NewMiddleware(monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{monitor: monitor, logger: logger}
}
