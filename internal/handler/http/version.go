// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-pericias/internal/logger"
)

// getServerVersion answers the configured release string as plain text. It is
// public so clients can show it before logging in.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("write version response")
	}
}
