// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/vault-service/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the binary",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "vault-service %s\n", version.Version)
		if rev := version.Revision(); rev != "" {
			fmt.Fprintf(out, "revision %s\n", rev)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
