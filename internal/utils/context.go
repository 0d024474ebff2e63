// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// context keys, session tokens, password hashing, recovery tokens and JSON
// response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pericias/models"
)

// contextKey is a private type for context keys so they never collide with
// string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// IdentityCtxKey stores the authenticated [models.Identity].
var IdentityCtxKey = contextKey("identity")

// GetUserIDFromContext returns the user id stored under [UserIDCtxKey].
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithIdentity stores id under [IdentityCtxKey] and its user id under
// [UserIDCtxKey].
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, id.UserID)
	return context.WithValue(ctx, IdentityCtxKey, id)
}

// GetIdentityFromContext returns the identity stored by [WithIdentity].
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return id, ok
}
