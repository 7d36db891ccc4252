// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/vault-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go

func TestMiddlewareAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantCode int
		wantUser string
	}{
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized},
		{name: "blank header", header: "   ", wantCode: http.StatusUnauthorized},
		{name: "forwarded identity", header: "c0ffee00-0000-7000-8000-000000000001", wantCode: http.StatusOK, wantUser: "c0ffee00-0000-7000-8000-000000000001"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "identity.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = authentication.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/vaults", nil)
			if test.header != "" {
				req.Header.Set(HeaderName, test.header)
			}
			rr := httptest.NewRecorder()

			NewMiddleware(mockTracer, mockMonitor, mockLogger).Authenticate()(next).ServeHTTP(rr, req)

			assert.Equal(t, test.wantCode, rr.Code)
			assert.Equal(t, test.wantUser, seen)
		})
	}
}
