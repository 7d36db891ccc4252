// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

type ClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	DisplayName(ctx context.Context, id string) (string, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	c.reportAvailability(r, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

// DisplayName resolves the name shown to invitees, falling back to the email trait.
func (c *Client) DisplayName(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.DisplayName")
	defer span.End()

	identity, err := c.GetIdentity(ctx, id)
	if err != nil {
		return "", err
	}

	return displayName(identity.Traits), nil
}

func (c *Client) reportAvailability(r *http.Response, err error) {
	availability := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		availability = 0
	}
	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, availability); mErr != nil {
		c.logger.Debugf("failed to set kratos availability metric: %v", mErr)
	}
}

// NameFromTraits understands both a flat "name" trait and the {first, last} shape.
func NameFromTraits(traits interface{}) string {
	t, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}

	switch name := t["name"].(type) {
	case string:
		return strings.TrimSpace(name)
	case map[string]interface{}:
		first, _ := name["first"].(string)
		last, _ := name["last"].(string)
		return strings.TrimSpace(first + " " + last)
	}

	return ""
}

func displayName(traits interface{}) string {
	if name := NameFromTraits(traits); name != "" {
		return name
	}

	t, _ := traits.(map[string]interface{})
	email, _ := t["email"].(string)
	return email
}
