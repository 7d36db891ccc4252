// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

// Relations of the vault type in models/v0.json.
const (
	OwnerRelation  = "owner"
	AdminRelation  = "admin"
	MemberRelation = "member"
)

func UserTuple(userID string) string {
	return "user:" + userID
}

func VaultTuple(vaultID string) string {
	return "vault:" + vaultID
}
