// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/MKhiriev/go-pericias/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listUsers", err)
		return
	}

	users, err := h.services.AuthService.ListUsers(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, "*Handler.listUsers", err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// forceReset sets a temporary password on another account and returns the
// account's new recovery token.
func (h *Handler) forceReset(w http.ResponseWriter, r *http.Request) {
	actor, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.forceReset", err)
		return
	}

	userID, err := pathID(r, userIDParam)
	if err != nil {
		writeServiceError(w, r, "*Handler.forceReset", err)
		return
	}

	var req models.ForceResetRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.forceReset", err)
		return
	}

	token, err := h.services.AuthService.AdminForceReset(r.Context(), actor, userID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.forceReset", err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("admin_id", actor.UserID).
		Int64("user_id", userID).
		Msg("password reset by admin")

	utils.WriteJSON(w, models.RecoveryTokenResponse{RecoveryToken: token}, http.StatusOK)
}
