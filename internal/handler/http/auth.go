// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/MKhiriev/go-pericias/models"
)

// register creates an account and answers 201 with the user and its one-time
// recovery token. The session token is sent in the Authorization header.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.register", err)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.register", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, resp.User)
	if err != nil {
		writeServiceError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", resp.User.UserID).Msg("user registered")

	setBearer(w, token)
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	setBearer(w, token)
	utils.WriteJSON(w, user, http.StatusOK)
}

// resetPassword consumes a recovery token and returns its replacement.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.resetPassword", err)
		return
	}

	token, err := h.services.AuthService.ResetWithToken(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.resetPassword", err)
		return
	}

	utils.WriteJSON(w, models.RecoveryTokenResponse{RecoveryToken: token}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.me", err)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, r, "*Handler.me", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.changePassword", err)
		return
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.changePassword", err)
		return
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), id.UserID, req); err != nil {
		writeServiceError(w, r, "*Handler.changePassword", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
