// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/vault-service/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	m := NewMonitor("vault-service-test", logging.NewNoopLogger())

	if m.GetService() != "vault-service-test" {
		t.Errorf("unexpected service %s", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/vaults", "status": "200"}, 0.25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.dependencyAvailability.WithLabelValues("database", "vault-service-test")); got != 1 {
		t.Errorf("expected availability 1, got %v", got)
	}
}

func TestMonitorWithoutMetrics(t *testing.T) {
	m := &Monitor{service: "empty", logger: logging.NewNoopLogger()}

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Error("expected error for uninstantiated histogram")
	}
	if err := m.SetDependencyAvailability(nil, 1); err == nil {
		t.Error("expected error for uninstantiated gauge")
	}
}
