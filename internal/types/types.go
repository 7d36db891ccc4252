// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionTrial, SubscriptionActive, SubscriptionInactive:
		return true
	}
	return false
}

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

type InvitationType string

const (
	InvitationTypeVault InvitationType = "vault"
)

type NotificationType string

const (
	NotificationVaultInvite         NotificationType = "vault_invite"
	NotificationVaultInviteAccepted NotificationType = "vault_invite_accepted"
)

type User struct {
	ID                 string             `db:"id" json:"id"`
	Email              string             `db:"email" json:"email"`
	Name               string             `db:"name" json:"name"`
	SubscriptionStatus SubscriptionStatus `db:"subscription_status" json:"subscription_status"`
	TrialExpiresAt     *time.Time         `db:"trial_expires_at" json:"trial_expires_at,omitempty"`
	CreatedAt          time.Time          `db:"created_at" json:"created_at"`
}

type Vault struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	IsPrivate bool      `db:"is_private" json:"is_private"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Membership struct {
	ID        string    `db:"id" json:"id"`
	VaultID   string    `db:"vault_id" json:"vault_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Invitation is an offer to join a vault. ReceiverID stays nil until the
// invitee has an account, ReceiverEmail is always set.
type Invitation struct {
	ID            string           `db:"id" json:"id"`
	Type          InvitationType   `db:"type" json:"type"`
	TargetID      string           `db:"target_id" json:"target_id"`
	TargetName    string           `db:"target_name" json:"target_name"`
	SenderID      string           `db:"sender_id" json:"sender_id"`
	ReceiverID    *string          `db:"receiver_id" json:"receiver_id,omitempty"`
	ReceiverEmail string           `db:"receiver_email" json:"receiver_email"`
	Status        InvitationStatus `db:"status" json:"status"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}

func (i *Invitation) IsPending() bool {
	return i.Status == InvitationPending
}

// IsReceiver reports whether userID is the resolved recipient.
func (i *Invitation) IsReceiver(userID string) bool {
	return i.ReceiverID != nil && *i.ReceiverID == userID
}

type Notification struct {
	ID        string           `db:"id" json:"id"`
	UserID    string           `db:"user_id" json:"user_id"`
	Type      NotificationType `db:"type" json:"type"`
	Message   string           `db:"message" json:"message"`
	Link      *string          `db:"link" json:"link,omitempty"`
	RelatedID *string          `db:"related_id" json:"related_id,omitempty"`
	IsRead    bool             `db:"is_read" json:"is_read"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

type VaultMember struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}
