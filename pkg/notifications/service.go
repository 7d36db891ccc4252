// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/internal/types"
)

// ErrNotification wraps every storage failure surfaced by this package. Callers
// mutating vaults or invitations log it and carry on.
var ErrNotification = errors.New("notification error")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNotification, err)
}

func (s *Service) Create(ctx context.Context, userID string, notificationType types.NotificationType, message string, link, relatedID *string) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Create")
	defer span.End()

	n, err := s.storage.CreateNotification(ctx, &types.Notification{
		UserID:    userID,
		Type:      notificationType,
		Message:   message,
		Link:      link,
		RelatedID: relatedID,
	})
	if err != nil {
		return nil, wrap("create notification", err)
	}

	return n, nil
}

func (s *Service) ListFor(ctx context.Context, userID string, limit, offset uint64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.ListFor")
	defer span.End()

	list, err := s.storage.ListNotificationsByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, wrap("list notifications", err)
	}

	if list == nil {
		list = []*types.Notification{}
	}

	return list, nil
}

func (s *Service) UnreadCountFor(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.UnreadCountFor")
	defer span.End()

	n, err := s.storage.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return 0, wrap("count unread notifications", err)
	}

	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, notificationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkRead")
	defer span.End()

	err := s.storage.MarkNotificationRead(ctx, notificationID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("notification %s: %w", notificationID, types.ErrNotFound)
	}
	if err != nil {
		return wrap("mark notification read", err)
	}

	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkAllRead")
	defer span.End()

	n, err := s.storage.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return 0, wrap("mark all notifications read", err)
	}

	return n, nil
}

// MarkReadByRelatedID is idempotent, matching nothing is not an error.
func (s *Service) MarkReadByRelatedID(ctx context.Context, relatedID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkReadByRelatedID")
	defer span.End()

	if _, err := s.storage.MarkNotificationsReadByRelatedID(ctx, relatedID, userID); err != nil {
		return wrap("mark related notifications read", err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, notificationID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Delete")
	defer span.End()

	err := s.storage.DeleteNotification(ctx, notificationID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("notification %s: %w", notificationID, types.ErrNotFound)
	}
	if err != nil {
		return wrap("delete notification", err)
	}

	return nil
}

func (s *Service) DeleteByRelatedID(ctx context.Context, relatedID string) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.DeleteByRelatedID")
	defer span.End()

	if _, err := s.storage.DeleteNotificationsByRelatedID(ctx, relatedID); err != nil {
		return wrap("delete related notifications", err)
	}

	return nil
}
