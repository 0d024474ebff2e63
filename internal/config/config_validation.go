// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] can start the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}
	if len(cfg.App.Divisions) == 0 || slices.Contains(cfg.App.Divisions, "") {
		return fmt.Errorf("%w: at least one non-empty division is required", ErrInvalidAppConfigs)
	}
	if cfg.App.AdminEmail == "" || cfg.App.AdminPassword == "" {
		return fmt.Errorf("%w: admin credentials are required", ErrInvalidAppConfigs)
	}
	if _, err := cfg.App.Location(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if !cfg.Storage.DB.IsPostgres() && cfg.Storage.Partitions.Dir == "" {
		return fmt.Errorf("%w: partitions dir is required for sqlite", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.Reports.Backend {
	case ReportsBackendFile:
		if cfg.Storage.Reports.Dir == "" {
			return fmt.Errorf("%w: reports dir is required", ErrInvalidStorageConfigs)
		}
	case ReportsBackendS3:
		if cfg.Storage.Reports.S3.Bucket == "" || cfg.Storage.Reports.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown reports backend %q", ErrInvalidStorageConfigs, cfg.Storage.Reports.Backend)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.ReaperInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
