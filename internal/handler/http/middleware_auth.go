// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/service"
	"github.com/MKhiriev/go-pericias/internal/utils"
)

// auth resolves the bearer token to the caller's current identity and stores
// it in the request context via [utils.WithIdentity].
//
// Role and the must-change flag are read from the credential table on every
// request, so a force reset or role change applies to tokens already issued.
// Missing, malformed, expired or orphaned tokens answer 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeServiceError(w, r, "*Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeServiceError(w, r, "*Handler.auth", ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		id, err := h.services.AuthService.Identify(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, "*Handler.auth", err)
			return
		}

		log := logger.FromContext(ctx).WithUserID(id.UserID)
		ctx = log.WithContext(utils.WithIdentity(ctx, id))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requirePasswordChanged blocks every route but the profile and password
// change while an admin-imposed password change is pending.
func (h *Handler) requirePasswordChanged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			writeServiceError(w, r, "*Handler.requirePasswordChanged", err)
			return
		}
		if id.MustChangePassword {
			writeServiceError(w, r, "*Handler.requirePasswordChanged", service.ErrPasswordChangeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			writeServiceError(w, r, "*Handler.adminOnly", err)
			return
		}
		if !id.IsAdmin() {
			writeServiceError(w, r, "*Handler.adminOnly", service.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
