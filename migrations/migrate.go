// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schemas and applies them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/users/*.sql sqlite/partition/*.sql
var embedMigrations embed.FS

// Schema selects one of the embedded migration sets.
type Schema int

const (
	// PostgresSchema holds the credential table and the shared case tables
	// partitioned by owner_id.
	PostgresSchema Schema = iota
	// SQLiteUsersSchema holds only the credential table.
	SQLiteUsersSchema
	// SQLitePartitionSchema holds the case tables of one user file.
	SQLitePartitionSchema
)

// ErrNilDB is returned when Migrate receives a nil handle.
var ErrNilDB = errors.New("db is nil")

func (s Schema) source() (goose.Dialect, string, error) {
	switch s {
	case PostgresSchema:
		return goose.DialectPostgres, "postgres", nil
	case SQLiteUsersSchema:
		return goose.DialectSQLite3, "sqlite/users", nil
	case SQLitePartitionSchema:
		return goose.DialectSQLite3, "sqlite/partition", nil
	default:
		return "", "", fmt.Errorf("unknown schema %d", s)
	}
}

// Migrate applies every pending migration of schema to db.
//
// A goose Provider is built per call, so partitions may be migrated
// concurrently without sharing goose's global state.
func Migrate(ctx context.Context, db *sql.DB, schema Schema) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dialect, dir, err := schema.source()
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
