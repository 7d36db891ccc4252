// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/vault-service/internal/logging"
)

func TestNoopTracerStart(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracerStart")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected context")
	}
	if span.SpanContext().IsValid() {
		t.Error("expected noop span to carry an invalid span context")
	}
}

func TestDisabledTracerUsesGlobalProvider(t *testing.T) {
	tracer := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	_, span := tracer.Start(context.Background(), "tracing.TestDisabledTracer")
	span.End()
}

func TestMiddlewarePassesThrough(t *testing.T) {
	mdw := NewMiddleware(nil, logging.NewNoopLogger())

	called := false
	h := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if !called {
		t.Error("expected wrapped handler to be called")
	}
	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
}

func TestProbesAreNotTraced(t *testing.T) {
	tests := map[string]bool{
		"/api/v0/status":         false,
		"/api/v0/ready":          false,
		"/api/v0/metrics":        false,
		"/api/v0/vaults":         true,
		"/api/v0/invitations/i1": true,
	}

	for path, want := range tests {
		if got := traced(httptest.NewRequest(http.MethodGet, path, nil)); got != want {
			t.Errorf("traced(%s) = %v, expected %v", path, got, want)
		}
	}
}
