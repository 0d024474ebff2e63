// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/migrations"
)

// Dialect names the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// builder returns a squirrel statement builder with the placeholder format of
// the dialect.
func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// DB wraps a *sql.DB with its dialect and logger.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewConnect opens the credential database described by cfg. A postgres://
// DSN connects through pgx, anything else is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.IsPostgres() {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg.DSN, log)
}

// Dialect reports the SQL flavour of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	return db.dialect.builder()
}

// Migrate applies the credential schema matching the dialect.
func (db *DB) Migrate(ctx context.Context) error {
	schema := migrations.SQLiteUsersSchema
	if db.dialect == DialectPostgres {
		schema = migrations.PostgresSchema
	}
	return migrations.Migrate(ctx, db.DB, schema)
}
