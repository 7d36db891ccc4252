// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/vault-service/internal/http/types"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/pkg/authentication"
)

// API serves the invitation views of the acting user. Accepting and declining
// change membership and live with the vault endpoints.
type API struct {
	ledger LedgerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(ledger LedgerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		ledger:  ledger,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/invitations/pending", a.listPending)
	mux.Get("/api/v0/invitations/sent", a.listSent)
	mux.Get("/api/v0/invitations/{id}", a.get)
	mux.Post("/api/v0/invitations/{id}/cancel", a.cancel)
	mux.Delete("/api/v0/invitations/{id}", a.delete)
}

func (a *API) listPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listPending")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	list, err := a.ledger.ListPendingForUser(ctx, userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, list)
}

func (a *API) listSent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listSent")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	list, err := a.ledger.ListSentBy(ctx, userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, list)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.get")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	inv, err := a.ledger.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	// only the two parties can see an invitation, everyone else gets a 404
	if inv.SenderID != userID && !inv.IsReceiver(userID) {
		types.WriteError(w, http.StatusNotFound, "not found")
		return
	}

	types.WriteJSON(w, http.StatusOK, inv)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.cancel")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := a.ledger.Cancel(ctx, chi.URLParam(r, "id"), userID); err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.delete")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := a.ledger.Delete(ctx, chi.URLParam(r, "id"), userID); err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
