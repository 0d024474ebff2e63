// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
)

// ReportKey derives the storage key of the report of a case.
func ReportKey(p Partition, caseID int64) string {
	return fmt.Sprintf("%s/case_%d", p.Key, caseID)
}

// NewReportStorage builds the report backend selected by cfg.Backend.
func NewReportStorage(ctx context.Context, cfg config.Reports, log *logger.Logger) (ReportStorage, error) {
	switch cfg.Backend {
	case config.ReportsBackendS3:
		return NewS3ReportStorage(ctx, cfg.S3, log)
	case config.ReportsBackendFile, "":
		return NewFileReportStorage(cfg.Dir, log)
	default:
		return nil, fmt.Errorf("unknown reports backend %q", cfg.Backend)
	}
}
