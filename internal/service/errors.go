// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pericias/internal/store"
)

// Error taxonomy surfaced to callers. Every error returned by a service
// matches exactly one of these with errors.Is, except unexpected storage
// failures.
var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownEmail       = errors.New("unknown email")
	ErrInvalidToken       = errors.New("invalid recovery token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")

	ErrForbidden              = errors.New("forbidden")
	ErrPasswordChangeRequired = errors.New("password change required")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// mapStoreError translates repository sentinels into the taxonomy.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCaseNotFound),
		errors.Is(err, store.ErrInterviewNotFound),
		errors.Is(err, store.ErrReportNotFound),
		errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	default:
		return err
	}
}

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
