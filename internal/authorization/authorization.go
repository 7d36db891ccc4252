// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/openfga"
	"github.com/canonical/vault-service/internal/tracing"
)

var ErrInvalidAuthModel = errors.New("authorization model in the store differs from the embedded one")

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer mirrors vault ownership and membership into OpenFGA. The database
// stays the source of truth, the tuples serve downstream services.
type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ValidateModel compares the store's model with the embedded v0 model.
func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	same, err := a.client.CompareModel(ctx, *NewAuthorizationModelProvider("v0").GetModel())
	switch {
	case err != nil:
		return fmt.Errorf("failed to compare authorization models: %w", err)
	case !same:
		return ErrInvalidAuthModel
	}

	return nil
}

func (a *Authorizer) AssignVaultOwner(ctx context.Context, vaultID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignVaultOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), OwnerRelation, VaultTuple(vaultID))
}

func (a *Authorizer) AssignVaultAdmin(ctx context.Context, vaultID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignVaultAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), AdminRelation, VaultTuple(vaultID))
}

func (a *Authorizer) AssignVaultMember(ctx context.Context, vaultID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignVaultMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), MemberRelation, VaultTuple(vaultID))
}

func (a *Authorizer) RemoveVaultAdmin(ctx context.Context, vaultID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveVaultAdmin")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), AdminRelation, VaultTuple(vaultID))
}

func (a *Authorizer) RemoveVaultMember(ctx context.Context, vaultID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveVaultMember")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), MemberRelation, VaultTuple(vaultID))
}

// DeleteVault drops every tuple whose object is the vault, one page at a time.
func (a *Authorizer) DeleteVault(ctx context.Context, vaultID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteVault")
	defer span.End()

	object := VaultTuple(vaultID)

	for token := ""; ; {
		page, err := a.client.ReadTuples(ctx, "", "", object, token)
		if err != nil {
			a.logger.Errorf("failed to read tuples of %s: %v", object, err)
			return err
		}

		tuples := make([]openfga.Tuple, 0, len(page.Tuples))
		for _, t := range page.Tuples {
			tuples = append(tuples, *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object))
		}

		if len(tuples) > 0 {
			if err := a.client.DeleteTuples(ctx, tuples...); err != nil {
				a.logger.Errorf("failed to delete %d tuples of %s: %v", len(tuples), object, err)
				return err
			}
		}

		if page.ContinuationToken == "" || len(tuples) == 0 {
			return nil
		}
		token = page.ContinuationToken
	}
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	return &Authorizer{
		client:  client,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
