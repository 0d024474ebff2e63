// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pericias/internal/adapter"
	"github.com/MKhiriev/go-pericias/internal/app"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns adapter errors into a line for the error overlay.
// Validation messages from the server (400) are shown as they are.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		if strings.Contains(strings.ToLower(err.Error()), "password") {
			return app.MsgPasswordChangeRequired
		}
		return app.MsgForbidden
	case errors.Is(err, adapter.ErrConflict):
		return app.MsgEmailAlreadyExists
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return app.MsgReportTooLarge
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return app.MsgInternalServerError
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}

// humanizeLoginError hides which credential was wrong.
func humanizeLoginError(err error) string {
	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrNotFound) {
		return app.MsgInvalidCredentials
	}
	return humanizeError(err)
}
