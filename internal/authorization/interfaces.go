// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/vault-service/internal/openfga"
)

type AuthorizerInterface interface {
	ValidateModel(context.Context) error

	AssignVaultOwner(context.Context, string, string) error
	AssignVaultMember(context.Context, string, string) error
	RemoveVaultMember(context.Context, string, string) error
	AssignVaultAdmin(context.Context, string, string) error
	RemoveVaultAdmin(context.Context, string, string) error

	DeleteVault(context.Context, string) error
}

type AuthzClientInterface interface {
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
