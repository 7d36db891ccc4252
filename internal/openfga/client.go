// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	res, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("issues reading authorization model: %s", err)
		return nil, err
	}

	return res.AuthorizationModel, nil
}

// CompareModel reports whether the model loaded in the store matches the given one.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, nil
	}

	if current.SchemaVersion != model.SchemaVersion {
		c.logger.Errorf("invalid authorization model schema version")
		return false, nil
	}

	a, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, err
	}
	b, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, err
	}

	if string(a) != string(b) {
		c.logger.Errorf("invalid authorization model type definitions")
		return false, nil
	}

	return true, nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	res, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to write authorization model: %w", err)
	}

	return res.GetAuthorizationModelId(), nil
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	res, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create store: %w", err)
	}

	return res.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) error {
	return c.c.SetStoreId(storeID)
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	options := client.ClientReadOptions{}
	if continuationToken != "" {
		options.ContinuationToken = &continuationToken
	}

	res, err := c.c.Read(ctx).Body(body).Options(options).Execute()
	if err != nil {
		c.logger.Errorf("issues performing read operation: %s", err)
		return nil, err
	}

	return res, nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	t := NewTuple(user, relation, object)
	_, err := c.c.WriteTuples(ctx).Body(client.ClientWriteTuplesBody{t.toClientTupleKey()}).Execute()
	if err != nil {
		c.logger.Errorf("issues performing write operation: %s", err)
	}

	return err
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientDeleteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.toClientTupleKeyWithoutCondition())
	}

	_, err := c.c.DeleteTuples(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("issues performing delete operation: %s", err)
	}

	return err
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	fgaClient, err := client.NewSdkClient(
		&client.ClientConfiguration{
			ApiUrl:               cfg.ApiURL(),
			StoreId:              cfg.StoreID,
			AuthorizationModelId: cfg.AuthModelID,
			Credentials: &credentials.Credentials{
				Method: credentials.CredentialsMethodApiToken,
				Config: &credentials.Config{
					ApiToken: cfg.ApiToken,
				},
			},
			Debug:      cfg.Debug,
			HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		},
	)
	if err != nil {
		c.logger.Fatalf("issues setting up OpenFGA client %s", err)
	}

	c.c = fgaClient

	return c
}
