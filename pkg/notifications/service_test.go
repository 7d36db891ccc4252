// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

func setupService(t *testing.T, span string) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), span).
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	return NewService(mockStorage, mockTracer, mockMonitor, mockLogger), mockStorage
}

func TestService_Create(t *testing.T) {
	relatedID := "inv-1"

	tests := []struct {
		name       string
		storageErr error
		wantErr    error
	}{
		{name: "success"},
		{name: "storage failure", storageErr: errors.New("db down"), wantErr: ErrNotification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockStorage := setupService(t, "notifications.Service.Create")

			mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, n *types.Notification) (*types.Notification, error) {
					if n.UserID != "u-2" || n.Type != types.NotificationVaultInvite || *n.RelatedID != relatedID {
						t.Errorf("unexpected notification %+v", n)
					}
					if tt.storageErr != nil {
						return nil, tt.storageErr
					}
					created := *n
					created.ID = "n-1"
					return &created, nil
				},
			)

			n, err := s.Create(context.Background(), "u-2", types.NotificationVaultInvite, "join Family", nil, &relatedID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !errors.Is(err, tt.storageErr) {
					t.Errorf("expected cause to be preserved, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.ID != "n-1" {
				t.Errorf("expected n-1, got %s", n.ID)
			}
		})
	}
}

func TestService_ListForNeverReturnsNil(t *testing.T) {
	s, mockStorage := setupService(t, "notifications.Service.ListFor")

	mockStorage.EXPECT().ListNotificationsByUserID(gomock.Any(), "u-1", uint64(10), uint64(0)).Return(nil, nil)

	list, err := s.ListFor(context.Background(), "u-1", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty list, got %v", list)
	}
}

func TestService_MarkRead(t *testing.T) {
	tests := []struct {
		name       string
		storageErr error
		wantErr    error
	}{
		{name: "success"},
		{name: "not owned", storageErr: storage.ErrNotFound, wantErr: types.ErrNotFound},
		{name: "storage failure", storageErr: errors.New("db down"), wantErr: ErrNotification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockStorage := setupService(t, "notifications.Service.MarkRead")

			mockStorage.EXPECT().MarkNotificationRead(gomock.Any(), "n-1", "u-1").Return(tt.storageErr)

			err := s.MarkRead(context.Background(), "n-1", "u-1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_MarkReadByRelatedIDIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	s := NewService(mockStorage, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	mockTracer.EXPECT().Start(gomock.Any(), "notifications.Service.MarkReadByRelatedID").
		Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)

	gomock.InOrder(
		mockStorage.EXPECT().MarkNotificationsReadByRelatedID(gomock.Any(), "inv-1", "u-2").Return(int64(1), nil),
		mockStorage.EXPECT().MarkNotificationsReadByRelatedID(gomock.Any(), "inv-1", "u-2").Return(int64(0), nil),
	)

	for i := 0; i < 2; i++ {
		if err := s.MarkReadByRelatedID(context.Background(), "inv-1", "u-2"); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}
}

func TestService_Delete(t *testing.T) {
	s, mockStorage := setupService(t, "notifications.Service.Delete")

	mockStorage.EXPECT().DeleteNotification(gomock.Any(), "n-1", "u-1").Return(storage.ErrNotFound)

	if err := s.Delete(context.Background(), "n-1", "u-1"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_DeleteByRelatedID(t *testing.T) {
	s, mockStorage := setupService(t, "notifications.Service.DeleteByRelatedID")

	mockStorage.EXPECT().DeleteNotificationsByRelatedID(gomock.Any(), "inv-1").Return(int64(0), errors.New("db down"))

	if err := s.DeleteByRelatedID(context.Background(), "inv-1"); !errors.Is(err, ErrNotification) {
		t.Errorf("expected ErrNotification, got %v", err)
	}
}

func TestService_Counters(t *testing.T) {
	t.Run("unread", func(t *testing.T) {
		s, mockStorage := setupService(t, "notifications.Service.UnreadCountFor")
		mockStorage.EXPECT().CountUnreadNotifications(gomock.Any(), "u-1").Return(int64(3), nil)

		n, err := s.UnreadCountFor(context.Background(), "u-1")
		if err != nil || n != 3 {
			t.Errorf("expected 3, got %d %v", n, err)
		}
	})

	t.Run("mark all", func(t *testing.T) {
		s, mockStorage := setupService(t, "notifications.Service.MarkAllRead")
		mockStorage.EXPECT().MarkAllNotificationsRead(gomock.Any(), "u-1").Return(int64(2), nil)

		n, err := s.MarkAllRead(context.Background(), "u-1")
		if err != nil || n != 2 {
			t.Errorf("expected 2, got %d %v", n, err)
		}
	})
}
