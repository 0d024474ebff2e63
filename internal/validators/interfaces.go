// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// A [Validator] accepts any supported request type and an optional list of
// field names. Without field names a default set is checked; with them only
// the named fields are. Every failure is a sentinel from errors.go so callers
// can map it to a response with errors.Is.
package validators

import "context"

// Validator validates obj, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
