// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type tokenArgs struct {
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
	json         bool
}

var tokenFlags tokenArgs

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Fetch a service token for the vaults API",
	Long: `Fetch an access token with the client credentials grant.
The token can be passed to the other client commands with --token.`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenFlags.clientID, "client-id", "", "OAuth2 client id")
	tokenCmd.Flags().StringVar(&tokenFlags.clientSecret, "client-secret", "", "OAuth2 client secret")
	tokenCmd.Flags().StringVar(&tokenFlags.tokenURL, "token-url", "", "Token endpoint, skips discovery")
	tokenCmd.Flags().StringVar(&tokenFlags.issuerURL, "issuer-url", "", "Issuer used for OIDC discovery")
	tokenCmd.Flags().StringSliceVar(&tokenFlags.scopes, "scopes", []string{"vaults"}, "Requested scopes")
	tokenCmd.Flags().BoolVar(&tokenFlags.json, "json", false, "Print the whole token as json")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}

func runToken(cmd *cobra.Command, _ []string) error {
	token, err := fetchToken(cmd.Context(), tokenFlags)
	if err != nil {
		return err
	}

	if !tokenFlags.json {
		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(token)
}

func fetchToken(ctx context.Context, args tokenArgs) (*oauth2.Token, error) {
	tokenURL := args.tokenURL
	if tokenURL == "" {
		if args.issuerURL == "" {
			return nil, errors.New("either --token-url or --issuer-url must be set")
		}

		provider, err := oidc.NewProvider(ctx, args.issuerURL)
		if err != nil {
			return nil, fmt.Errorf("discovery on %s failed: %w", args.issuerURL, err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	cfg := clientcredentials.Config{
		ClientID:     args.clientID,
		ClientSecret: args.clientSecret,
		TokenURL:     tokenURL,
		Scopes:       args.scopes,
	}

	token, err := cfg.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}

	return token, nil
}
