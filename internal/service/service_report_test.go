// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
	"github.com/MKhiriev/go-pericias/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportSvc(t *testing.T, ctrl *gomock.Controller) (ReportService, caseMocks) {
	t.Helper()
	storages, m := newTestStorages(ctrl)
	return NewReportService(storages, logger.Nop()), m
}

func TestReportService_UploadReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportSvc(t, ctrl)
	ctx := context.Background()
	body := strings.NewReader("%PDF-1.7")

	m.acquire()
	m.cases.EXPECT().GetCase(ctx, testPartition, int64(5)).Return(storedCase(models.CaseDelivered), nil)
	m.reports.EXPECT().PutReport(ctx, "user_42/case_5", DefaultReportContentType, body, int64(8)).
		Return(models.ReportObject{Key: "user_42/case_5", ContentType: DefaultReportContentType, Size: 8}, nil)

	obj, err := svc.UploadReport(ctx, testUserID, 5, "", body, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), obj.Size)
}

func TestReportService_UploadReport_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.UploadReport(ctx, testUserID, 5, "application/pdf", nil, 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.UploadReport(ctx, testUserID, 5, "application/pdf", strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	m.acquire()
	m.cases.EXPECT().GetCase(ctx, testPartition, int64(404)).Return(models.Case{}, store.ErrCaseNotFound)
	_, err = svc.UploadReport(ctx, testUserID, 404, "application/pdf", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrNotFound)

	backendErr := errors.New("bucket unavailable")
	m.acquire()
	m.cases.EXPECT().GetCase(ctx, testPartition, int64(5)).Return(storedCase(models.CaseOpen), nil)
	m.reports.EXPECT().PutReport(ctx, "user_42/case_5", "application/pdf", gomock.Any(), int64(1)).
		Return(models.ReportObject{}, backendErr)
	_, err = svc.UploadReport(ctx, testUserID, 5, "application/pdf", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, backendErr)
}

func TestReportService_DownloadReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportSvc(t, ctrl)
	ctx := context.Background()
	updated := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	m.acquire()
	m.cases.EXPECT().GetCase(ctx, testPartition, int64(5)).Return(storedCase(models.CaseDelivered), nil)
	m.reports.EXPECT().GetReport(ctx, "user_42/case_5").Return(
		io.NopCloser(strings.NewReader("laudo")),
		models.ReportObject{Key: "user_42/case_5", ContentType: "application/pdf", Size: 5, UpdatedAt: updated},
		nil,
	)

	rc, obj, err := svc.DownloadReport(ctx, testUserID, 5)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "laudo", string(data))
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, updated, obj.UpdatedAt)
}

func TestReportService_DownloadReport_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestReportSvc(t, ctrl)
	ctx := context.Background()

	m.acquire()
	m.cases.EXPECT().GetCase(ctx, testPartition, int64(5)).Return(storedCase(models.CaseOpen), nil)
	m.reports.EXPECT().GetReport(ctx, "user_42/case_5").Return(nil, models.ReportObject{}, store.ErrReportNotFound)

	rc, _, err := svc.DownloadReport(ctx, testUserID, 5)
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrNotFound)
}
