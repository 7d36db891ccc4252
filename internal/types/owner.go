// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

type OwnerKind string

const (
	OwnerKindUser  OwnerKind = "user"
	OwnerKindVault OwnerKind = "vault"
)

type Visibility string

const (
	VisibilityShared  Visibility = "shared"
	VisibilityPrivate Visibility = "private"
)

// Owner references the owner of a goal or transaction, either a user or a vault.
// The zero value is not a valid owner, use UserOwner, VaultOwner or ParseOwner.
type Owner struct {
	kind OwnerKind
	id   string
}

func UserOwner(id string) Owner {
	return Owner{kind: OwnerKindUser, id: id}
}

func VaultOwner(id string) Owner {
	return Owner{kind: OwnerKindVault, id: id}
}

// ParseOwner builds an Owner from its stored (owner_type, owner_id) pair.
func ParseOwner(kind, id string) (Owner, error) {
	if id == "" {
		return Owner{}, fmt.Errorf("owner id is empty")
	}

	switch OwnerKind(kind) {
	case OwnerKindUser:
		return UserOwner(id), nil
	case OwnerKindVault:
		return VaultOwner(id), nil
	}

	return Owner{}, fmt.Errorf("unknown owner type %q", kind)
}

func (o Owner) Kind() OwnerKind {
	return o.kind
}

func (o Owner) ID() string {
	return o.id
}

func (o Owner) IsZero() bool {
	return o.kind == "" && o.id == ""
}

// UserID returns the owning user id when the owner is a user.
func (o Owner) UserID() (string, bool) {
	return o.id, o.kind == OwnerKindUser
}

// VaultID returns the owning vault id when the owner is a vault.
func (o Owner) VaultID() (string, bool) {
	return o.id, o.kind == OwnerKindVault
}

func (o Owner) String() string {
	return string(o.kind) + ":" + o.id
}
