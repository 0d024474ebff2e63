// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/utils"
)

// maxReportSize bounds an uploaded report.
const maxReportSize = 32 << 20

// uploadReport stores the raw request body as the report of a case. A body
// of unknown length is buffered so the backend always receives a size.
func (h *Handler) uploadReport(w http.ResponseWriter, r *http.Request) {
	id, caseID, err := caseTarget(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.uploadReport", err)
		return
	}

	if r.ContentLength > maxReportSize {
		writeServiceError(w, r, "*Handler.uploadReport", ErrReportTooLarge)
		return
	}

	var body io.Reader = http.MaxBytesReader(w, r.Body, maxReportSize)
	size := r.ContentLength
	if size < 0 {
		data, err := io.ReadAll(body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				err = ErrReportTooLarge
			}
			writeServiceError(w, r, "*Handler.uploadReport", err)
			return
		}
		body, size = bytes.NewReader(data), int64(len(data))
	}

	obj, err := h.services.ReportService.UploadReport(r.Context(), id.UserID, caseID, r.Header.Get("Content-Type"), body, size)
	if err != nil {
		writeServiceError(w, r, "*Handler.uploadReport", err)
		return
	}

	utils.WriteJSON(w, obj, http.StatusCreated)
}

func (h *Handler) downloadReport(w http.ResponseWriter, r *http.Request) {
	id, caseID, err := caseTarget(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadReport", err)
		return
	}

	rc, obj, err := h.services.ReportService.DownloadReport(r.Context(), id.UserID, caseID)
	if err != nil {
		writeServiceError(w, r, "*Handler.downloadReport", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", obj.ContentType)
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	if !obj.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", obj.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Err(err).
			Str("func", "*Handler.downloadReport").
			Int64("case_id", caseID).
			Msg("report stream interrupted")
	}
}
