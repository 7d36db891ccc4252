// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/vault-service/internal/db"
	"github.com/canonical/vault-service/internal/http/types"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/notifications", a.list)
	mux.Get("/api/v0/notifications/unread-count", a.unreadCount)
	mux.Post("/api/v0/notifications/read-all", a.markAllRead)
	mux.Post("/api/v0/notifications/{id}/read", a.markRead)
	mux.Delete("/api/v0/notifications/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.list")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	pageSize := db.PageSize(size)

	list, err := a.service.ListFor(ctx, userID, pageSize, db.Offset(page, pageSize))
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, list)
}

func (a *API) unreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.unreadCount")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	count, err := a.service.UnreadCountFor(ctx, userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]int64{"unread": count})
}

func (a *API) markAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.markAllRead")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	updated, err := a.service.MarkAllRead(ctx, userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]int64{"updated": updated})
}

func (a *API) markRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.markRead")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := a.service.MarkRead(ctx, chi.URLParam(r, "id"), userID); err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notifications.API.delete")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := a.service.Delete(ctx, chi.URLParam(r, "id"), userID); err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
