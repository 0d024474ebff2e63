// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pericias/internal/service"
	"github.com/MKhiriev/go-pericias/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadCall struct {
	caseID      int64
	contentType string
	body        string
	size        int64
}

func routerWithReports(t *testing.T, reports *fakeReportService) http.Handler {
	t.Helper()
	services := testServices()
	services.ReportService = reports
	return newTestRouter(t, services)
}

func recordingUploads(calls *[]uploadCall) *fakeReportService {
	return &fakeReportService{
		uploadFn: func(_ context.Context, _ int64, caseID int64, contentType string, body io.Reader, size int64) (models.ReportObject, error) {
			data, err := io.ReadAll(body)
			if err != nil {
				return models.ReportObject{}, err
			}
			*calls = append(*calls, uploadCall{caseID: caseID, contentType: contentType, body: string(data), size: size})
			return models.ReportObject{Key: "user_7/case_3", ContentType: contentType, Size: size}, nil
		},
	}
}

func TestUploadReport(t *testing.T) {
	var calls []uploadCall
	router := routerWithReports(t, recordingUploads(&calls))

	req := httptest.NewRequest(http.MethodPut, "/api/cases/3/report", strings.NewReader("%PDF-1.7 laudo"))
	req.Header.Set("Authorization", "Bearer "+userToken)
	req.Header.Set("Content-Type", "application/pdf")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, calls, 1)
	assert.Equal(t, uploadCall{caseID: 3, contentType: "application/pdf", body: "%PDF-1.7 laudo", size: 14}, calls[0])
}

func TestUploadReport_UnknownLengthIsBuffered(t *testing.T) {
	var calls []uploadCall
	router := routerWithReports(t, recordingUploads(&calls))

	req := httptest.NewRequest(http.MethodPut, "/api/cases/3/report", strings.NewReader("chunked body"))
	req.ContentLength = -1
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, calls, 1)
	assert.Equal(t, int64(len("chunked body")), calls[0].size)
	assert.Equal(t, "chunked body", calls[0].body)
}

func TestUploadReport_TooLarge(t *testing.T) {
	var calls []uploadCall
	router := routerWithReports(t, recordingUploads(&calls))

	req := httptest.NewRequest(http.MethodPut, "/api/cases/3/report", strings.NewReader("x"))
	req.ContentLength = maxReportSize + 1
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, calls)
}

func TestDownloadReport(t *testing.T) {
	updated := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	router := routerWithReports(t, &fakeReportService{
		downloadFn: func(_ context.Context, _ int64, caseID int64) (io.ReadCloser, models.ReportObject, error) {
			if caseID == 404 {
				return nil, models.ReportObject{}, service.ErrNotFound
			}
			return io.NopCloser(strings.NewReader("laudo")),
				models.ReportObject{Key: "user_7/case_3", ContentType: "application/pdf", Size: 5, UpdatedAt: updated},
				nil
		},
	})

	rec := doRequest(router, http.MethodGet, "/api/cases/3/report", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "laudo", rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "5", rec.Header().Get("Content-Length"))
	assert.Equal(t, updated.Format(http.TimeFormat), rec.Header().Get("Last-Modified"))

	rec = doRequest(router, http.MethodGet, "/api/cases/404/report", userToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
