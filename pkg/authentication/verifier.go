// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

const apiResource = "api:vaults"

var (
	ErrNoAccessPolicy = errors.New("unauthorized: no access policy configured")
	ErrNotAllowed     = errors.New("unauthorized: missing required scope or subject not allowed")
)

// accessClaims are the token claims the access policy looks at.
type accessClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

// scopes merges the space separated scope claim with the scp array.
func (c accessClaims) scopes() []string {
	return append(strings.Fields(c.Scope), c.Scopes...)
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier

	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	var claims accessClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return "", err
	}

	if err := v.authorize(claims); err != nil {
		v.logger.Security().AuthzFailure(claims.Subject, apiResource)
		return "", err
	}

	return claims.Subject, nil
}

// authorize accepts an allow-listed subject or a token carrying the required scope.
func (v *JWTVerifier) authorize(claims accessClaims) error {
	if len(v.allowedSubjects) == 0 && v.requiredScope == "" {
		return ErrNoAccessPolicy
	}

	if slices.Contains(v.allowedSubjects, claims.Subject) {
		return nil
	}

	if v.requiredScope != "" && slices.Contains(claims.scopes(), v.requiredScope) {
		return nil
	}

	return ErrNotAllowed
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:        verifier,
		allowedSubjects: cfg.AllowedSubjects,
		requiredScope:   cfg.RequiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
