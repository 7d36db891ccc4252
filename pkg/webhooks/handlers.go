// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/vault-service/internal/http/types"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/tracing"
)

const apiKeyHeader = "X-Webhook-Key"

type API struct {
	service   ServiceInterface
	apiKey    string
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewAPI builds the webhook endpoints. When apiKey is set every call must
// carry it in the X-Webhook-Key header.
func NewAPI(service ServiceInterface, apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		apiKey:    apiKey,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Group(func(r chi.Router) {
		r.Use(a.requireAPIKey)
		r.Post("/api/v0/webhooks/registration", a.registration)
		r.Post("/api/v0/webhooks/subscription", a.subscription)
	})
}

func (a *API) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.apiKey != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(apiKeyHeader)), []byte(a.apiKey)) != 1 {
			a.logger.Security().AuthzFailure("webhook", r.URL.Path)
			types.WriteError(w, http.StatusUnauthorized, "invalid webhook key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.service.HandleRegistration(ctx, identity.ID, identity.Email(), identity.Name())
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, user)
}

func (a *API) subscription(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.subscription")
	defer span.End()

	var event SubscriptionEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(&event); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.HandleSubscription(ctx, &event); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidPayload) {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	types.WriteDomainError(w, a.logger, err)
}
