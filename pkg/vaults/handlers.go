// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vaults

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/vault-service/internal/http/types"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
	domain "github.com/canonical/vault-service/internal/types"
	"github.com/canonical/vault-service/pkg/authentication"
)

type CreateVaultRequest struct {
	Name      string  `json:"name" validate:"required,max=120"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	IsPrivate bool    `json:"is_private"`
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateRoleRequest struct {
	Role domain.Role `json:"role" validate:"required,oneof=admin member"`
}

type API struct {
	manager   ManagerInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(manager ManagerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		manager:   manager,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/me/access", a.capabilities)

	mux.Post("/api/v0/vaults", a.createVault)
	mux.Get("/api/v0/vaults", a.listVaults)
	mux.Get("/api/v0/vaults/{id}", a.getVault)
	mux.Delete("/api/v0/vaults/{id}", a.deleteVault)
	mux.Get("/api/v0/vaults/{id}/access", a.vaultAccess)
	mux.Get("/api/v0/vaults/{id}/members", a.listMembers)
	mux.Patch("/api/v0/vaults/{id}/members/{userID}", a.updateMemberRole)
	mux.Delete("/api/v0/vaults/{id}/members/{userID}", a.removeMember)
	mux.Post("/api/v0/vaults/{id}/leave", a.leaveVault)
	mux.Post("/api/v0/vaults/{id}/invitations", a.invite)
	mux.Get("/api/v0/vaults/{id}/invitations", a.listInvitations)

	mux.Post("/api/v0/invitations/{id}/accept", a.acceptInvitation)
	mux.Post("/api/v0/invitations/{id}/decline", a.declineInvitation)
}

// decode reads and validates a JSON body, writing a 400 when either fails.
func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validator.Struct(v); err != nil {
		types.WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return false
	}

	return true
}

func (a *API) capabilities(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.capabilities")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	c, err := a.manager.Capabilities(ctx, userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, c)
}

func (a *API) createVault(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.createVault")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	var req CreateVaultRequest
	if !a.decode(w, r, &req) {
		return
	}

	vault, err := a.manager.CreateVault(ctx, userID, req.Name, req.ImageURL, req.IsPrivate)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, vault)
}

func (a *API) listVaults(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.listVaults")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	vaults, err := a.manager.ListVaultsForUser(ctx, userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, vaults)
}

func (a *API) getVault(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.getVault")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	vault, err := a.manager.GetVault(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, vault)
}

func (a *API) deleteVault(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.deleteVault")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := a.manager.DeleteVault(ctx, chi.URLParam(r, "id"), userID); err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) vaultAccess(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.vaultAccess")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	allowed, err := a.manager.VaultAccess(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]bool{"access": allowed})
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.listMembers")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	members, err := a.manager.ListMembers(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, members)
}

func (a *API) updateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.updateMemberRole")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if !a.decode(w, r, &req) {
		return
	}

	err := a.manager.UpdateMemberRole(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "userID"), req.Role, userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.removeMember")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := a.manager.RemoveMember(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "userID"), userID); err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) leaveVault(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.leaveVault")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	if err := a.manager.LeaveVault(ctx, chi.URLParam(r, "id"), userID); err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.invite")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	var req InviteRequest
	if !a.decode(w, r, &req) {
		return
	}

	inv, err := a.manager.Invite(ctx, chi.URLParam(r, "id"), userID, req.Email)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, inv)
}

func (a *API) listInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.listInvitations")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	list, err := a.manager.ListInvitations(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, list)
}

func (a *API) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.acceptInvitation")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	inv, err := a.manager.AcceptInvitation(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, inv)
}

func (a *API) declineInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "vaults.API.declineInvitation")
	defer span.End()

	userID, ok := authentication.RequireUserID(w, r)
	if !ok {
		return
	}

	inv, err := a.manager.DeclineInvitation(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		types.WriteDomainError(w, a.logger, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, inv)
}
