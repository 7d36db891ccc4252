// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
)

//go:embed models/*.json
var models embed.FS

type AuthorizationModelProvider struct {
	apiVersion string
}

// GetModel panics when the embedded model for the version is missing or malformed,
// both are build defects.
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	raw, err := models.ReadFile(fmt.Sprintf("models/%s.json", a.apiVersion))
	if err != nil {
		panic(fmt.Sprintf("missing authorization model %s: %v", a.apiVersion, err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal(raw, model); err != nil {
		panic(fmt.Sprintf("invalid authorization model %s: %v", a.apiVersion, err))
	}

	return model
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	a := new(AuthorizationModelProvider)
	a.apiVersion = apiVersion

	return a
}
