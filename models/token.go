// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a session JWT issued after register or login.
//
// Only the subject claim is trusted; role and the must-change flag are read
// from the credential store on every request so that an admin force reset
// takes effect immediately.
type Token struct {
	// Token is the parsed or freshly signed JWT.
	*jwt.Token `json:"-"`

	// SignedString is the compact header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// SubjectOf renders a user id as a "sub" claim.
func SubjectOf(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// ParseSubject converts a "sub" claim back into a user id.
func ParseSubject(sub string) (int64, error) {
	if sub == "" {
		return 0, fmt.Errorf("empty subject")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject %q to user id: %w", sub, err)
	}
	return userID, nil
}

// ExpiresAt returns the "exp" claim, or the zero time when absent.
func (t *Token) ExpiresAt() time.Time {
	if t.Token == nil {
		return time.Time{}
	}
	exp, err := t.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID             int64
	Role               Role
	MustChangePassword bool
}

// IdentityOf extracts the identity fields of a user record.
func IdentityOf(u User) Identity {
	return Identity{UserID: u.UserID, Role: u.Role, MustChangePassword: u.MustChangePassword}
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
