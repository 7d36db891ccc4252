// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/vault-service/internal/logging"
	domain "github.com/canonical/vault-service/internal/types"
)

// ErrorResponse keeps the {status, message} shape used across the platform APIs.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Data:    data,
			Message: http.StatusText(status),
			Status:  status,
		},
	)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		ErrorResponse{
			Status:  status,
			Message: message,
		},
	)
}

// StatusFromError maps domain errors to HTTP status codes, anything unknown is a 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrDuplicateInvitation),
		errors.Is(err, domain.ErrInvalidOrProcessed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPrivateVaultNoInvites):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError writes the mapped status. Internal failures are logged and
// their details withheld from the client.
func WriteDomainError(w http.ResponseWriter, logger logging.LoggerInterface, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
		WriteError(w, status, "internal server error")
		return
	}

	WriteError(w, status, err.Error())
}
