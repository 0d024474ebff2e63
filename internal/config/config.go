// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       variable name of a scalar field.
type StructuredConfig struct {
	// App holds token, password hashing, time zone, division and admin seed settings.
	App App `envPrefix:"APP_"`

	// Storage holds the credential database, partition and report storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON config file (CONFIG env, -c / -config flag).
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session JWT (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TimeZone is the IANA zone in which "today" is evaluated for deadlines.
	// Env: APP_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`

	// Divisions is the closed set of court divisions a case may belong to.
	// Env: APP_DIVISIONS (comma separated)
	Divisions []string `env:"DIVISIONS" envSeparator:","`

	// AdminEmail, AdminPassword and AdminName describe the seeded admin account.
	// Env: APP_ADMIN_EMAIL, APP_ADMIN_PASSWORD, APP_ADMIN_NAME
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME"`
}

// Location resolves TimeZone. An empty zone means time.Local.
func (a App) Location() (*time.Location, error) {
	if a.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", a.TimeZone, err)
	}
	return loc, nil
}

// Storage groups the persistence backends.
type Storage struct {
	DB         DB         `envPrefix:"DB_"`
	Partitions Partitions `envPrefix:"PARTITIONS_"`
	Reports    Reports    `envPrefix:"REPORTS_"`
}

// DB holds the credential database connection.
type DB struct {
	// DSN selects the driver: a postgres:// URL uses pgx and keeps every
	// partition in the same database; anything else is a SQLite file path
	// and every partition gets its own file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// IsPostgres reports whether DSN points to PostgreSQL.
func (d DB) IsPostgres() bool {
	return strings.HasPrefix(d.DSN, "postgres://") || strings.HasPrefix(d.DSN, "postgresql://")
}

// Partitions holds the per-user case store settings of the SQLite backend.
type Partitions struct {
	// Dir is where cases_user_<id>.db files live.
	// Env: STORAGE_PARTITIONS_DIR
	Dir string `env:"DIR"`

	// IdleTimeout is how long an unused partition handle stays open.
	// Env: STORAGE_PARTITIONS_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// Report storage backends.
const (
	ReportsBackendFile = "file"
	ReportsBackendS3   = "s3"
)

// Reports selects where report (laudo) files are archived.
type Reports struct {
	// Backend is "file" or "s3".
	// Env: STORAGE_REPORTS_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the root directory of the file backend.
	// Env: STORAGE_REPORTS_DIR
	Dir string `env:"DIR"`

	S3 S3 `envPrefix:"S3_"`
}

// S3 holds object storage settings.
type S3 struct {
	Bucket          string `env:"BUCKET" json:"bucket"`
	Region          string `env:"REGION" json:"region"`
	BaseEndpoint    string `env:"BASE_ENDPOINT" json:"base_endpoint"`
	AccessKeyID     string `env:"ACCESS_KEY_ID" json:"access_key_id"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" json:"secret_access_key"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE" json:"use_path_style"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the "host:port" the API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the API base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// ReaperInterval is how often idle partition handles are closed.
	// Env: WORKERS_REAPER_INTERVAL
	ReaperInterval time.Duration `env:"REAPER_INTERVAL"`
}

// GetStructuredConfig loads the server configuration from env, flags and the
// optional JSON file, applies defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:]...)
}

func getStructuredConfig(args ...string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder(args...).
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
