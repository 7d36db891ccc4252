// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/canonical/vault-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, userID string, notificationType types.NotificationType, message string, link, relatedID *string) (*types.Notification, error)
	ListFor(ctx context.Context, userID string, limit, offset uint64) ([]*types.Notification, error)
	UnreadCountFor(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	MarkReadByRelatedID(ctx context.Context, relatedID, userID string) error
	Delete(ctx context.Context, notificationID, userID string) error
	DeleteByRelatedID(ctx context.Context, relatedID string) error
}

// StorageInterface is the subset of internal/storage used by the notifications package.
type StorageInterface interface {
	CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error)
	ListNotificationsByUserID(ctx context.Context, userID string, limit, offset uint64) ([]*types.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int64, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
	MarkNotificationsReadByRelatedID(ctx context.Context, relatedID, userID string) (int64, error)
	DeleteNotification(ctx context.Context, id, userID string) error
	DeleteNotificationsByRelatedID(ctx context.Context, relatedID string) (int64, error)
}
