// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/vault-service/internal/types"
)

var inviteCmd = &cobra.Command{
	Use:   "invite [vault-id] [email]",
	Short: "Invite someone to a vault by email",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv := new(types.Invitation)
		path := fmt.Sprintf("/api/v0/vaults/%s/invitations", args[0])
		if err := getClient().do(cmd.Context(), http.MethodPost, path, map[string]string{"email": args[1]}, inv); err != nil {
			return fmt.Errorf("failed to invite member: %w", err)
		}

		fmt.Printf("Invitation sent to %s (ID: %s)\n", inv.ReceiverEmail, inv.ID)
		return nil
	},
}

var invitationsCmd = &cobra.Command{
	Use:   "invitations",
	Short: "Manage invitations",
}

var sentInvitations bool

var listInvitationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending invitations for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/v0/invitations/pending"
		if sentInvitations {
			path = "/api/v0/invitations/sent"
		}

		var list []*types.Invitation
		if err := getClient().do(cmd.Context(), http.MethodGet, path, nil, &list); err != nil {
			return fmt.Errorf("failed to list invitations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tVAULT\tEMAIL\tSTATUS\tCREATED_AT")
		for _, inv := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", inv.ID, inv.TargetName, inv.ReceiverEmail, inv.Status, inv.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

// invitationActionCmd builds the accept, decline and cancel subcommands.
func invitationActionCmd(action, short, done string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v0/invitations/%s/%s", args[0], action)
			if err := getClient().do(cmd.Context(), http.MethodPost, path, nil, nil); err != nil {
				return fmt.Errorf("failed to %s invitation: %w", action, err)
			}

			fmt.Printf("Invitation %s: %s\n", done, args[0])
			return nil
		},
	}
}

var deleteInvitationCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an invitation you received",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/api/v0/invitations/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete invitation: %w", err)
		}

		fmt.Printf("Invitation deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inviteCmd)
	rootCmd.AddCommand(invitationsCmd)
	invitationsCmd.AddCommand(listInvitationsCmd)
	invitationsCmd.AddCommand(invitationActionCmd("accept", "Accept an invitation and join the vault", "accepted"))
	invitationsCmd.AddCommand(invitationActionCmd("decline", "Decline an invitation", "declined"))
	invitationsCmd.AddCommand(invitationActionCmd("cancel", "Cancel an invitation you sent", "cancelled"))
	invitationsCmd.AddCommand(deleteInvitationCmd)

	listInvitationsCmd.Flags().BoolVar(&sentInvitations, "sent", false, "List invitations you sent instead")
}
