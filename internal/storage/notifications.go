// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/vault-service/internal/types"
)

var notificationColumns = []string{"id", "user_id", "type", "message", "link", "related_id", "is_read", "created_at"}

func scanNotification(row rowScanner) (*types.Notification, error) {
	var n types.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Link, &n.RelatedID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) (*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	id, err := newID("notification")
	if err != nil {
		return nil, err
	}

	created, err := scanNotification(
		s.db.Statement(ctx).
			Insert("notifications").
			Columns("id", "user_id", "type", "message", "link", "related_id").
			Values(id, n.UserID, string(n.Type), n.Message, n.Link, n.RelatedID).
			Suffix("RETURNING " + strings.Join(notificationColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		return nil, wrapWriteError(err, "insert notification")
	}

	return created, nil
}

func (s *Storage) ListNotificationsByUserID(ctx context.Context, userID string, limit, offset uint64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotificationsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*types.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notifications, nil
}

func (s *Storage) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUnreadNotifications")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"user_id": userID, "is_read": false}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkNotificationRead is scoped to the owning user, a foreign id reads as not found.
func (s *Storage) MarkNotificationRead(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationRead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkAllNotificationsRead")
	defer span.End()

	return s.markRead(ctx, sq.Eq{"user_id": userID, "is_read": false})
}

func (s *Storage) MarkNotificationsReadByRelatedID(ctx context.Context, relatedID, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationsReadByRelatedID")
	defer span.End()

	return s.markRead(ctx, sq.Eq{"related_id": relatedID, "user_id": userID, "is_read": false})
}

func (s *Storage) markRead(ctx context.Context, where sq.Eq) (int64, error) {
	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("is_read", true).
		Where(where).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}

func (s *Storage) DeleteNotification(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNotification")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("notifications").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) DeleteNotificationsByRelatedID(ctx context.Context, relatedID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNotificationsByRelatedID")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("notifications").
		Where(sq.Eq{"related_id": relatedID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}
