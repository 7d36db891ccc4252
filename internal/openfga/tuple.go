// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"github.com/openfga/go-sdk/client"
)

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func (t *Tuple) toClientTupleKey() client.ClientTupleKey {
	return client.ClientTupleKey{
		User:     t.User,
		Relation: t.Relation,
		Object:   t.Object,
	}
}

func (t *Tuple) toClientTupleKeyWithoutCondition() client.ClientTupleKeyWithoutCondition {
	return client.ClientTupleKeyWithoutCondition{
		User:     t.User,
		Relation: t.Relation,
		Object:   t.Object,
	}
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)

	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}
