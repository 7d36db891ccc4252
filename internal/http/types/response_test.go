// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/vault-service/internal/logging"
	domain "github.com/canonical/vault-service/internal/types"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: domain.ErrNotFound, want: http.StatusNotFound},
		{err: fmt.Errorf("get vault: %w", domain.ErrNotFound), want: http.StatusNotFound},
		{err: domain.ErrForbidden, want: http.StatusForbidden},
		{err: domain.ErrAlreadyMember, want: http.StatusConflict},
		{err: domain.ErrDuplicateInvitation, want: http.StatusConflict},
		{err: domain.ErrInvalidOrProcessed, want: http.StatusConflict},
		{err: domain.ErrPrivateVaultNoInvites, want: http.StatusUnprocessableEntity},
		{err: domain.StorageError("insert", errors.New("boom")), want: http.StatusInternalServerError},
		{err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := StatusFromError(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWriteDomainErrorHidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteDomainError(rr, logging.NewNoopLogger(), domain.StorageError("insert vault", errors.New("connection refused")))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "internal server error" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusCreated, map[string]string{"id": "v-1"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var body struct {
		Data   map[string]string `json:"data"`
		Status int               `json:"status"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data["id"] != "v-1" || body.Status != http.StatusCreated {
		t.Errorf("unexpected body %+v", body)
	}
}
