// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/service"
	"github.com/MKhiriev/go-pericias/internal/utils"
)

// errorStatusMap holds one entry per taxonomy error. Service errors wrap
// exactly one of them, so the lookup order does not matter.
var errorStatusMap = map[error]int{
	service.ErrInvalidArgument: http.StatusBadRequest,
	ErrInvalidJSON:             http.StatusBadRequest,
	ErrInvalidPathParam:        http.StatusBadRequest,
	ErrInvalidQueryParam:       http.StatusBadRequest,
	ErrInvalidGzipBody:         http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrInvalidToken:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,

	service.ErrForbidden:              http.StatusForbidden,
	service.ErrPasswordChangeRequired: http.StatusForbidden,

	service.ErrNotFound:     http.StatusNotFound,
	service.ErrUnknownEmail: http.StatusNotFound,

	service.ErrDuplicateEmail: http.StatusConflict,

	ErrReportTooLarge: http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Internal
// failures are answered with the bare status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
