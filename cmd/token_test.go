// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "vaults", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	token, err := fetchToken(context.Background(), tokenArgs{
		clientID:     "cli",
		clientSecret: "secret",
		tokenURL:     srv.URL,
		scopes:       []string{"vaults"},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
}

func TestFetchTokenNeedsEndpoint(t *testing.T) {
	_, err := fetchToken(context.Background(), tokenArgs{clientID: "cli", clientSecret: "secret"})
	assert.Error(t, err)
}
