// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of request parsing. Callers can match them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is called
	// without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned for request bodies that do not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParam is returned for a non-numeric or non-positive id in
	// the URL path.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidQueryParam is returned for a malformed query parameter.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrInvalidGzipBody is returned for a gzip-encoded body that does not
	// start with a valid gzip header.
	ErrInvalidGzipBody = errors.New("invalid gzip data")

	// ErrReportTooLarge is returned when an uploaded report exceeds
	// [maxReportSize].
	ErrReportTooLarge = errors.New("report is too large")
)
