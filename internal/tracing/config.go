// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/vault-service/internal/logging"
)

// Config picks the span exporter: OTLP over gRPC when OtelGRPCEndpoint is
// set, OTLP over HTTP when OtelHTTPEndpoint is set, stdout otherwise.
type Config struct {
	Enabled          bool
	OtelGRPCEndpoint string
	OtelHTTPEndpoint string

	Logger logging.LoggerInterface
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		Enabled:          enabled,
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
	}
}
