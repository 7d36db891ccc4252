// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is read from the environment by the serve command.
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port        int      `envconfig:"port" default:"8080"`
	CORSOrigins []string `envconfig:"cors_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
	DBTxTimeout       time.Duration `envconfig:"db_tx_timeout" default:"1m"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	// AuthenticationMode is one of jwt, header or noop
	AuthenticationMode string   `envconfig:"authentication_mode" default:"jwt"`
	JWTIssuer          string   `envconfig:"jwt_issuer"`
	JWTJWKSURL         string   `envconfig:"jwt_jwks_url"`
	JWTAllowedSubjects []string `envconfig:"jwt_allowed_subjects"`
	JWTRequiredScope   string   `envconfig:"jwt_required_scope" default:"vaults"`
	WebhookAPIKey      string   `envconfig:"webhook_api_key"`

	// invitation emails, the noop mailer only logs when disabled
	MailEnabled  bool   `envconfig:"mail_enabled" default:"false"`
	SMTPHost     string `envconfig:"smtp_host" default:"localhost"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	SMTPFrom     string `envconfig:"smtp_from" default:"vaults@localhost"`

	// PublicBaseURL prefixes links in notifications and emails
	PublicBaseURL    string        `envconfig:"public_base_url" default:"http://localhost:8080"`
	TrialDuration    time.Duration `envconfig:"trial_duration" default:"336h"`
	EmailSendTimeout time.Duration `envconfig:"email_send_timeout" default:"30s"`
}
