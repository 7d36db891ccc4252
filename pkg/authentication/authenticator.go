// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// Config selects how bearer tokens are verified and who may call the API.
type Config struct {
	Issuer string
	// JWKSURL skips OIDC discovery when set
	JWKSURL string

	AllowedSubjects []string
	RequiredScope   string
}

// NewJWTAuthenticator builds a verifier for tokens issued by cfg.Issuer.
func NewJWTAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if cfg.RequiredScope == "" && len(cfg.AllowedSubjects) == 0 {
		logger.Warn("JWT authentication has no scope or subject policy, every token will be rejected")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)
	oidcConfig := &oidc.Config{SkipClientIDCheck: true}

	if cfg.JWKSURL != "" {
		logger.Infof("Verifying tokens from %s against JWKS %s", cfg.Issuer, cfg.JWKSURL)
		keySet := oidc.NewRemoteKeySet(ctx, cfg.JWKSURL)

		return NewJWTVerifier(oidc.NewVerifier(cfg.Issuer, keySet, oidcConfig), cfg, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	return NewJWTVerifier(provider.Verifier(oidcConfig), cfg, tracer, monitor, logger), nil
}
