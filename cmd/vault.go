// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/vault-service/internal/access"
	"github.com/canonical/vault-service/internal/types"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage vaults",
}

var (
	vaultImageURL string
	vaultPrivate  bool
)

var createVaultCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new vault owned by the authenticated user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := map[string]any{"name": args[0], "is_private": vaultPrivate}
		if vaultImageURL != "" {
			in["image_url"] = vaultImageURL
		}

		vault := new(types.Vault)
		if err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/vaults", in, vault); err != nil {
			return fmt.Errorf("failed to create vault: %w", err)
		}

		fmt.Printf("Vault created: %s (ID: %s)\n", vault.Name, vault.ID)
		return nil
	},
}

var listVaultsCmd = &cobra.Command{
	Use:   "list",
	Short: "List vaults the authenticated user belongs to",
	RunE: func(cmd *cobra.Command, args []string) error {
		var vaults []*types.Vault
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/vaults", nil, &vaults); err != nil {
			return fmt.Errorf("failed to list vaults: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tOWNER\tPRIVATE\tCREATED_AT")
		for _, v := range vaults {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", v.ID, v.Name, v.OwnerID, v.IsPrivate, v.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var deleteVaultCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a vault, only its owner may do so",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/api/v0/vaults/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete vault: %w", err)
		}

		fmt.Printf("Vault deleted: %s\n", args[0])
		return nil
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "members [id]",
	Short: "List the members of a vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var members []*types.VaultMember
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/vaults/"+args[0]+"/members", nil, &members); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tNAME\tROLE")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.UserID, m.Email, m.Name, m.Role)
		}
		w.Flush()
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove-member [id] [user-id]",
	Short: "Remove a member from a vault",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("/api/v0/vaults/%s/members/%s", args[0], args[1])
		if err := getClient().do(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("Member %s removed from vault %s\n", args[1], args[0])
		return nil
	},
}

var leaveVaultCmd = &cobra.Command{
	Use:   "leave [id]",
	Short: "Leave a vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/vaults/"+args[0]+"/leave", nil, nil); err != nil {
			return fmt.Errorf("failed to leave vault: %w", err)
		}

		fmt.Printf("Left vault: %s\n", args[0])
		return nil
	},
}

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Show what the authenticated user's subscription allows",
	RunE: func(cmd *cobra.Command, args []string) error {
		caps := new(access.Capabilities)
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/me/access", nil, caps); err != nil {
			return fmt.Errorf("failed to read capabilities: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "STATUS\t%s\n", caps.EffectiveStatus)
		fmt.Fprintf(w, "FULL_ACCESS\t%v\n", caps.HasFullAccess)
		fmt.Fprintf(w, "CREATE_VAULTS\t%v\n", caps.CanCreateVaults)
		fmt.Fprintf(w, "PERSONAL_WORKSPACE\t%v\n", caps.CanAccessPersonalWorkspace)
		fmt.Fprintf(w, "ACCEPT_INVITATIONS\t%v\n", caps.CanAcceptInvitations)
		if caps.TrialExpiresAt != nil {
			fmt.Fprintf(w, "TRIAL_EXPIRES_AT\t%s\n", caps.TrialExpiresAt)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
	rootCmd.AddCommand(accessCmd)
	vaultCmd.AddCommand(createVaultCmd)
	vaultCmd.AddCommand(listVaultsCmd)
	vaultCmd.AddCommand(deleteVaultCmd)
	vaultCmd.AddCommand(listMembersCmd)
	vaultCmd.AddCommand(removeMemberCmd)
	vaultCmd.AddCommand(leaveVaultCmd)

	createVaultCmd.Flags().StringVar(&vaultImageURL, "image-url", "", "Image URL shown for the vault")
	createVaultCmd.Flags().BoolVar(&vaultPrivate, "private", false, "Private vaults cannot have invitations")
}
