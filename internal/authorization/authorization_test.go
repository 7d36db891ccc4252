// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/vault-service/internal/openfga"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

type fixture struct {
	client *MockAuthzClientInterface
	logger *MockLoggerInterface
	authz  *Authorizer
}

// newFixture expects exactly one span named span.
func newFixture(t *testing.T, span string) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		client: NewMockAuthzClientInterface(ctrl),
		logger: NewMockLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), span).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	f.authz = NewAuthorizer(f.client, tracer, NewMockMonitorInterface(ctrl), f.logger)
	return f
}

func readResponse(token string, keys ...fga.TupleKey) *client.ClientReadResponse {
	res := &client.ClientReadResponse{ContinuationToken: token}
	for _, k := range keys {
		res.Tuples = append(res.Tuples, fga.Tuple{Key: k})
	}
	return res
}

func TestValidateModel(t *testing.T) {
	clientErr := errors.New("store unreachable")

	tests := []struct {
		name    string
		same    bool
		err     error
		wantErr error
	}{
		{name: "models match", same: true},
		{name: "models differ", wantErr: ErrInvalidAuthModel},
		{name: "store unreachable", err: clientErr, wantErr: clientErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "authorization.Authorizer.ValidateModel")
			f.client.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(tt.same, tt.err)

			err := f.authz.ValidateModel(context.Background())

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRelationMirroring(t *testing.T) {
	const (
		vaultID = "v-1"
		userID  = "u-1"
	)

	tests := []struct {
		span     string
		call     func(context.Context, *Authorizer) error
		write    bool
		relation string
	}{
		{
			span:     "authorization.Authorizer.AssignVaultOwner",
			call:     func(ctx context.Context, a *Authorizer) error { return a.AssignVaultOwner(ctx, vaultID, userID) },
			write:    true,
			relation: OwnerRelation,
		},
		{
			span:     "authorization.Authorizer.AssignVaultAdmin",
			call:     func(ctx context.Context, a *Authorizer) error { return a.AssignVaultAdmin(ctx, vaultID, userID) },
			write:    true,
			relation: AdminRelation,
		},
		{
			span:     "authorization.Authorizer.AssignVaultMember",
			call:     func(ctx context.Context, a *Authorizer) error { return a.AssignVaultMember(ctx, vaultID, userID) },
			write:    true,
			relation: MemberRelation,
		},
		{
			span:     "authorization.Authorizer.RemoveVaultAdmin",
			call:     func(ctx context.Context, a *Authorizer) error { return a.RemoveVaultAdmin(ctx, vaultID, userID) },
			relation: AdminRelation,
		},
		{
			span:     "authorization.Authorizer.RemoveVaultMember",
			call:     func(ctx context.Context, a *Authorizer) error { return a.RemoveVaultMember(ctx, vaultID, userID) },
			relation: MemberRelation,
		},
	}

	for _, tt := range tests {
		for _, clientErr := range []error{nil, errors.New("fga down")} {
			t.Run(tt.span, func(t *testing.T) {
				f := newFixture(t, tt.span)

				if tt.write {
					f.client.EXPECT().WriteTuple(gomock.Any(), "user:u-1", tt.relation, "vault:v-1").Return(clientErr)
				} else {
					f.client.EXPECT().DeleteTuple(gomock.Any(), "user:u-1", tt.relation, "vault:v-1").Return(clientErr)
				}

				if err := tt.call(context.Background(), f.authz); !errors.Is(err, clientErr) {
					t.Errorf("expected %v, got %v", clientErr, err)
				}
			})
		}
	}
}

func TestDeleteVault(t *testing.T) {
	owner := fga.TupleKey{User: "user:u-1", Relation: OwnerRelation, Object: "vault:v-1"}
	member := fga.TupleKey{User: "user:u-2", Relation: MemberRelation, Object: "vault:v-1"}

	tests := []struct {
		name    string
		expect  func(fixture)
		wantErr bool
	}{
		{
			name: "single page",
			expect: func(f fixture) {
				f.client.EXPECT().ReadTuples(gomock.Any(), "", "", "vault:v-1", "").Return(readResponse("", owner, member), nil)
				f.client.EXPECT().DeleteTuples(gomock.Any(),
					*openfga.NewTuple(owner.User, owner.Relation, owner.Object),
					*openfga.NewTuple(member.User, member.Relation, member.Object),
				).Return(nil)
			},
		},
		{
			name: "follows the continuation token",
			expect: func(f fixture) {
				gomock.InOrder(
					f.client.EXPECT().ReadTuples(gomock.Any(), "", "", "vault:v-1", "").Return(readResponse("next", owner), nil),
					f.client.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil),
					f.client.EXPECT().ReadTuples(gomock.Any(), "", "", "vault:v-1", "next").Return(readResponse("", member), nil),
					f.client.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "nothing mirrored",
			expect: func(f fixture) {
				f.client.EXPECT().ReadTuples(gomock.Any(), "", "", "vault:v-1", "").Return(readResponse(""), nil)
			},
		},
		{
			name: "read fails",
			expect: func(f fixture) {
				f.client.EXPECT().ReadTuples(gomock.Any(), "", "", "vault:v-1", "").Return(nil, errors.New("fga down"))
				f.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantErr: true,
		},
		{
			name: "delete fails",
			expect: func(f fixture) {
				f.client.EXPECT().ReadTuples(gomock.Any(), "", "", "vault:v-1", "").Return(readResponse("", owner), nil)
				f.client.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(errors.New("fga down"))
				f.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "authorization.Authorizer.DeleteVault")
			tt.expect(f)

			err := f.authz.DeleteVault(context.Background(), "v-1")
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEmbeddedModel(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()

	if model.SchemaVersion != "1.1" {
		t.Errorf("expected schema version 1.1, got %q", model.SchemaVersion)
	}

	var vault *fga.TypeDefinition
	for i := range model.TypeDefinitions {
		if model.TypeDefinitions[i].Type == "vault" {
			vault = &model.TypeDefinitions[i]
		}
	}
	if vault == nil {
		t.Fatal("expected a vault type")
	}

	relations := vault.GetRelations()
	for _, rel := range []string{OwnerRelation, AdminRelation, MemberRelation} {
		if _, ok := relations[rel]; !ok {
			t.Errorf("expected relation %q on vault", rel)
		}
	}
}
