// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
	"github.com/MKhiriev/go-pericias/models"
)

// DefaultReportContentType is stored when the upload names no content type.
const DefaultReportContentType = "application/octet-stream"

var errEmptyReport = errors.New("report body is empty")

type reportService struct {
	cases      store.CaseRepository
	partitions store.Partitioner
	reports    store.ReportStorage

	logger *logger.Logger
}

func NewReportService(storages *store.Storages, logger *logger.Logger) ReportService {
	return &reportService{
		cases:      storages.Cases,
		partitions: storages.Partitions,
		reports:    storages.Reports,
		logger:     logger,
	}
}

// UploadReport stores body as the report of a case, replacing any previous
// one. The case must exist in the caller's partition.
func (s *reportService) UploadReport(ctx context.Context, userID, caseID int64, contentType string, body io.Reader, size int64) (models.ReportObject, error) {
	if body == nil || size == 0 {
		return models.ReportObject{}, invalidArgument(errEmptyReport)
	}
	if contentType == "" {
		contentType = DefaultReportContentType
	}

	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.ReportObject{}, err
	}
	defer p.Release()

	if _, err = s.cases.GetCase(ctx, p, caseID); err != nil {
		return models.ReportObject{}, mapStoreError(err)
	}

	obj, err := s.reports.PutReport(ctx, store.ReportKey(p, caseID), contentType, body, size)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*reportService.UploadReport").
			Int64("user_id", userID).
			Int64("case_id", caseID).
			Msg("failed to store report")
		return models.ReportObject{}, err
	}

	return obj, nil
}

// DownloadReport opens the report of a case. The caller closes the reader.
func (s *reportService) DownloadReport(ctx context.Context, userID, caseID int64) (io.ReadCloser, models.ReportObject, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return nil, models.ReportObject{}, err
	}
	defer p.Release()

	if _, err = s.cases.GetCase(ctx, p, caseID); err != nil {
		return nil, models.ReportObject{}, mapStoreError(err)
	}

	rc, obj, err := s.reports.GetReport(ctx, store.ReportKey(p, caseID))
	if err != nil {
		return nil, models.ReportObject{}, mapStoreError(err)
	}
	return rc, obj, nil
}
