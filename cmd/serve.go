// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/vault-service/internal/access"
	"github.com/canonical/vault-service/internal/authorization"
	"github.com/canonical/vault-service/internal/config"
	"github.com/canonical/vault-service/internal/db"
	"github.com/canonical/vault-service/internal/identity"
	"github.com/canonical/vault-service/internal/kratos"
	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/mail"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/monitoring/prometheus"
	"github.com/canonical/vault-service/internal/openfga"
	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/pkg/authentication"
	"github.com/canonical/vault-service/pkg/invitations"
	"github.com/canonical/vault-service/pkg/notifications"
	"github.com/canonical/vault-service/pkg/vaults"
	"github.com/canonical/vault-service/pkg/web"
	"github.com/canonical/vault-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the vaults API server",
	Long:  `Start the vaults API server, configuration is read from the environment.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("vault-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TxTimeout:       specs.DBTxTimeout,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	authorizer, err := newAuthorizer(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	authenticator, err := newAuthenticator(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	notifier := notifications.NewService(s, tracer, monitor, logger)
	ledger := invitations.NewLedger(s, dbClient, notifier, tracer, monitor, logger)
	manager := vaults.NewManager(
		s,
		ledger,
		notifier,
		access.NewEvaluator(time.Now, logger),
		authorizer,
		kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger),
		newMailer(specs, tracer, monitor, logger),
		dbClient,
		vaults.Config{
			PublicBaseURL:    specs.PublicBaseURL,
			EmailSendTimeout: specs.EmailSendTimeout,
		},
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		web.Services{
			Vaults:        manager,
			Invitations:   ledger,
			Notifications: notifier,
			Webhooks:      webhooks.NewService(s, ledger, dbClient, specs.TrialDuration, time.Now, tracer, monitor, logger),
		},
		authenticator,
		specs.WebhookAPIKey,
		specs.CORSOrigins,
		dbClient,
		tracer,
		monitor,
		logger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
		Handler:      router,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Security().SystemStartup()
		logger.Infof("Starting HTTP server on port %v", specs.Port)
		serverErr <- srv.ListenAndServe()
	}()

	var runErr error
	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("server shutdown error: %w", err))
	}

	// in-flight invitation emails still read from the pool
	manager.Wait()

	return runErr
}

// newAuthorizer mirrors vault relations into OpenFGA when enabled, the noop
// client drops every write otherwise.
func newAuthorizer(
	ctx context.Context,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger), nil
	}

	client := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)

	authorizer := authorization.NewAuthorizer(client, tracer, monitor, logger)
	if err := authorizer.ValidateModel(ctx); err != nil {
		return nil, fmt.Errorf("openfga store %s is not usable: %w", specs.OpenfgaStoreId, err)
	}

	logger.Info("Authorization is enabled")
	return authorizer, nil
}

func newMailer(
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) vaults.MailerInterface {
	if !specs.MailEnabled {
		logger.Info("Invitation emails are disabled")
		return mail.NewNoopMailer(logger)
	}

	return mail.NewMailer(
		mail.Config{
			Host:     specs.SMTPHost,
			Port:     specs.SMTPPort,
			Username: specs.SMTPUsername,
			Password: specs.SMTPPassword,
			From:     specs.SMTPFrom,
		},
		tracer,
		monitor,
		logger,
	)
}

func newAuthenticator(
	ctx context.Context,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (web.AuthenticatorInterface, error) {
	switch specs.AuthenticationMode {
	case "jwt":
		verifier, err := authentication.NewJWTAuthenticator(
			ctx,
			authentication.Config{
				Issuer:          specs.JWTIssuer,
				JWKSURL:         specs.JWTJWKSURL,
				AllowedSubjects: specs.JWTAllowedSubjects,
				RequiredScope:   specs.JWTRequiredScope,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to set up JWT authentication: %w", err)
		}
		return authentication.NewMiddleware(verifier, tracer, monitor, logger), nil
	case "header":
		logger.Infof("Trusting %s from the identity proxy", identity.HeaderName)
		return identity.NewMiddleware(tracer, monitor, logger), nil
	case "noop":
		logger.Warn("Authentication is disabled, bearer tokens are used as user ids")
		return authentication.NewMiddleware(authentication.NewNoopVerifier(), tracer, monitor, logger), nil
	default:
		return nil, fmt.Errorf("unknown authentication mode %q", specs.AuthenticationMode)
	}
}
