// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the self-service sign-up payload.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest carries the credentials checked by authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest sets a new password for the authenticated user.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ResetPasswordRequest is the recovery-token reset payload.
type ResetPasswordRequest struct {
	Email         string `json:"email"`
	RecoveryToken string `json:"recovery_token"`
	NewPassword   string `json:"new_password"`
}

// ForceResetRequest is sent by an admin to reset another user's password.
type ForceResetRequest struct {
	TemporaryPassword string `json:"temporary_password"`
}

// RegisterResponse is returned once after sign-up. RecoveryToken cannot be
// read again later; it can only be regenerated.
type RegisterResponse struct {
	User          User   `json:"user"`
	RecoveryToken string `json:"recovery_token"`
}

// RecoveryTokenResponse carries a freshly rotated recovery token.
type RecoveryTokenResponse struct {
	RecoveryToken string `json:"recovery_token"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
