// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/vault-service/migrations"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the vault schema. The DSN flag falls back to the DSN environment variable.`,
	Args:  migrateArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) > 1 {
			return fmt.Errorf("%s takes no version argument", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.Atoi(args[1]); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("invalid migration command: %q", args[0])
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	version := int64(-1)
	if len(args) > 1 {
		version, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}
	if dsn == "" {
		return fmt.Errorf("a DSN is required, pass --dsn or set DSN")
	}

	format, _ := cmd.Flags().GetString("format")

	provider, err := newMigrationProvider(cmd.Context(), dsn, format == "json")
	if err != nil {
		return err
	}

	r := &migrationReport{json: format == "json", out: cmd.OutOrStdout()}

	switch command {
	case "up":
		results, err := provider.Up(cmd.Context())
		if err != nil {
			return err
		}
		return r.applied(results)
	case "down":
		var results []*goose.MigrationResult
		if version < 0 {
			result, err := provider.Down(cmd.Context())
			if err != nil {
				return err
			}
			results = append(results, result)
		} else if results, err = provider.DownTo(cmd.Context(), version); err != nil {
			return err
		}
		return r.applied(results)
	case "status":
		statuses, err := provider.Status(cmd.Context())
		if err != nil {
			return err
		}
		return r.status(statuses)
	case "check":
		return r.check(cmd.Context(), provider)
	}

	return nil
}

func newMigrationProvider(ctx context.Context, dsn string, quiet bool) (*goose.Provider, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed, err: %v", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("DB connection failed, err: %v", err)
	}

	var opts []goose.ProviderOption
	if quiet {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, nil
}

// migrationReport prints goose results as text or as one JSON document.
type migrationReport struct {
	json bool
	out  io.Writer
}

func (r *migrationReport) applied(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if r.json {
		return json.NewEncoder(r.out).Encode(map[string]any{"applied": results})
	}

	for _, res := range results {
		fmt.Fprintf(r.out, "%-8s %s (%s)\n", res.Direction, res.Source.Path, res.Duration)
	}
	return nil
}

func (r *migrationReport) status(statuses []*goose.MigrationStatus) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return w.Flush()
}

func (r *migrationReport) check(ctx context.Context, provider *goose.Provider) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if r.json {
		return json.NewEncoder(r.out).Encode(map[string]any{"status": state, "version": current})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	fmt.Fprintf(r.out, "Database is up to date (version %d)\n", current)
	return nil
}
