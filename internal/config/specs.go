// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	EthosAPIURL string `envconfig:"ethos_api_url" default:"https://api.ethos.network/api/v2"`

	// InviteTokenLifetime bounds how long an issued invite token stays redeemable.
	InviteTokenLifetime time.Duration `envconfig:"invite_token_lifetime" default:"24h"`
	// ReapplyCooldown is the mandatory wait after a rejection before a new
	// application is evaluated for the same (project, identity) pair.
	ReapplyCooldown time.Duration `envconfig:"reapply_cooldown" default:"72h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Authentication has no insecure fallback: when enabled, a missing issuer
	// aborts startup instead of degrading to an unauthenticated service.
	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"true"`
	JWTIssuer             string   `envconfig:"jwt_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope" default:"access:apply"`
	AdminScope            string   `envconfig:"admin_scope" default:"access:admin"`
}
