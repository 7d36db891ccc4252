// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/vault-service/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

func TestAliveReportsVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := NewMockPingerInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "status.API.alive").Return(ctx, trace.SpanFromContext(ctx))

	mux := chi.NewMux()
	NewAPI(mockDB, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body struct {
		Data Status `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Data.Status != "ok" || body.Data.BuildInfo == nil || body.Data.BuildInfo.Version != version.Version {
		t.Fatalf("unexpected body %+v", body.Data)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		expectedCode int
	}{
		{name: "database reachable", expectedCode: http.StatusOK},
		{name: "database down", pingErr: fmt.Errorf("connection refused"), expectedCode: http.StatusServiceUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockPingerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "status.API.ready").Return(ctx, trace.SpanFromContext(ctx))
			mockDB.EXPECT().Ping(gomock.Any()).Return(test.pingErr)
			if test.pingErr != nil {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			}

			mux := chi.NewMux()
			NewAPI(mockDB, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

			if w.Code != test.expectedCode {
				t.Fatalf("expected status %d, got %d", test.expectedCode, w.Code)
			}
		})
	}
}
