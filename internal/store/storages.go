// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
)

// Storages groups every persistence component handed to the service layer.
type Storages struct {
	DB         *DB
	Users      UserRepository
	Partitions Partitioner
	Cases      CaseRepository
	Interviews InterviewRepository
	Reports    ReportStorage
}

// NewStorages connects to the credential database, applies its migrations and
// wires the repositories, the partitioner and the report backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	reports, err := NewReportStorage(ctx, cfg.Reports, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating report storage: %w", err)
	}

	return &Storages{
		DB:         db,
		Users:      NewUserRepository(db, log),
		Partitions: NewPartitioner(db, cfg.Partitions, log),
		Cases:      NewCaseRepository(log),
		Interviews: NewInterviewRepository(log),
		Reports:    reports,
	}, nil
}

// Close releases the partitions first and the credential database last.
func (s *Storages) Close() error {
	var errs []error
	if s.Partitions != nil {
		errs = append(errs, s.Partitions.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
