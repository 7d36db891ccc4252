// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/vault-service/internal/http/types"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status    string     `json:"status"`
	BuildInfo *BuildInfo `json:"buildInfo"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commitHash"`
	Name       string `json:"name"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	types.WriteJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: buildInfo()})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	// the database client reports its own availability metric on ping
	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database is not reachable: %v", err)
		types.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	types.WriteJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: buildInfo()})
}

func buildInfo() *BuildInfo {
	b := &BuildInfo{Version: version.Version, CommitHash: version.Revision()}
	if info, ok := debug.ReadBuildInfo(); ok {
		b.Name = info.Main.Path
	}

	return b
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
