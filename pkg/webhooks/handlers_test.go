// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/vault-service/internal/types"
)

func TestAPI_Webhooks(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		key            string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name: "registration",
			path: "/api/v0/webhooks/registration",
			body: `{"id":"u-2","traits":{"email":"new@x.com","name":{"first":"Nina","last":"Park"}}}`,
			key:  "secret",
			setupMocks: func(mockSvc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), "u-2", "new@x.com", "Nina Park").Return(&types.User{ID: "u-2"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "registration with wrong key",
			path: "/api/v0/webhooks/registration",
			body: `{"id":"u-2"}`,
			key:  "guess",
			setupMocks: func(_ *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("webhook", "/api/v0/webhooks/registration")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "registration with invalid body",
			path:           "/api/v0/webhooks/registration",
			body:           `{`,
			key:            "secret",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "registration with missing email",
			path: "/api/v0/webhooks/registration",
			body: `{"id":"u-2","traits":{}}`,
			key:  "secret",
			setupMocks: func(mockSvc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), "u-2", "", "").Return(nil, ErrInvalidPayload)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "registration storage failure",
			path: "/api/v0/webhooks/registration",
			body: `{"id":"u-2","traits":{"email":"new@x.com"}}`,
			key:  "secret",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), "u-2", "new@x.com", "").Return(nil, errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "subscription",
			path: "/api/v0/webhooks/subscription",
			body: `{"user_id":"u-1","status":"inactive"}`,
			key:  "secret",
			setupMocks: func(mockSvc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockSvc.EXPECT().HandleSubscription(gomock.Any(), &SubscriptionEvent{UserID: "u-1", Status: types.SubscriptionInactive}).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "subscription with unknown status",
			path:           "/api/v0/webhooks/subscription",
			body:           `{"user_id":"u-1","status":"gold"}`,
			key:            "secret",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "subscription for unknown user",
			path: "/api/v0/webhooks/subscription",
			body: `{"user_id":"u-9","status":"active"}`,
			key:  "secret",
			setupMocks: func(mockSvc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockSvc.EXPECT().HandleSubscription(gomock.Any(), gomock.Any()).Return(types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
				Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
			tt.setupMocks(mockSvc, mockLogger, mockSecurity)

			mux := chi.NewMux()
			NewAPI(mockSvc, "secret", mockTracer, NewMockMonitorInterface(ctrl), mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("X-Webhook-Key", tt.key)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
