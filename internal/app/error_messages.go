// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shown by the terminal
// client.
//
// Keeping them in one place ensures consistent wording between screens and
// error overlays.
package app

const (
	// MsgServerUnavailable is shown when the server cannot be reached at all.
	MsgServerUnavailable = "network is down or the server is unavailable"

	// MsgInvalidCredentials is shown for any failed login. The server does
	// not say whether the email or the password was wrong.
	MsgInvalidCredentials = "invalid email or password"

	// MsgSessionExpired is shown when the bearer token is rejected after
	// login.
	MsgSessionExpired = "session expired, please log in again"

	// MsgPasswordChangeRequired is shown when an admin reset the password
	// and the user must choose a new one before doing anything else.
	MsgPasswordChangeRequired = "your password was reset by an administrator, choose a new one"

	// MsgForbidden is shown when a non-admin reaches an admin action.
	MsgForbidden = "you are not allowed to do this"

	// MsgEmailAlreadyExists is shown when registration hits a taken email.
	MsgEmailAlreadyExists = "this email is already registered"

	// MsgNotFound is shown when the record disappeared or the recovery data
	// does not match an account.
	MsgNotFound = "not found"

	// MsgReportTooLarge is shown when an uploaded report exceeds the limit.
	MsgReportTooLarge = "report is too large"

	// MsgInternalServerError is shown for any 5xx answer.
	MsgInternalServerError = "internal server error"

	// MsgRequiredFields is shown when a form is submitted with a required
	// field left empty.
	MsgRequiredFields = "fill in all required fields"

	// MsgPasswordTooShort is shown when a new password is under the minimum
	// length.
	MsgPasswordTooShort = "password must have at least 6 characters"

	// MsgPasswordsDoNotMatch is shown when the confirmation field differs.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgInvalidDate is shown when a date field is not YYYY-MM-DD.
	MsgInvalidDate = "dates must be written as YYYY-MM-DD"

	// MsgInvalidTime is shown when a time field is not HH:MM.
	MsgInvalidTime = "time must be written as HH:MM"

	// MsgInvalidNumber is shown when a numeric field cannot be parsed or is
	// negative.
	MsgInvalidNumber = "numbers must be zero or positive"

	// MsgInvalidStatus is shown when the status filter is not a known case
	// status.
	MsgInvalidStatus = "status must be open, in_review, delivered or received"

	// MsgTokenCopied is the status line after the recovery token was copied.
	MsgTokenCopied = "recovery token copied"

	// MsgSaved is the status line after a successful change.
	MsgSaved = "saved"
)
