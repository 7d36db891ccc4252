// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	userID       string
	accessToken  string
	httpEndpoint string
)

var rootCmd = &cobra.Command{
	Use:          "vault-service",
	Short:        "Shared vaults service",
	Long:         `Server and client for shared vaults, their members and invitations.`,
	SilenceUsage: true,
}

// Execute runs the command picked from os.Args and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "Base URL of the vaults API")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "User id sent in the identity proxy header")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", "", "Bearer token, see the token command")
}
