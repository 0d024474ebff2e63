// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level of a [User].
type Role string

const (
	// RoleAdmin may list users and force password resets.
	RoleAdmin Role = "admin"
	// RoleNormal is the role of every self-registered account.
	RoleNormal Role = "normal"
)

// User represents an account of the credential table.
//
// Sensitive fields (password hash, recovery token) are excluded from JSON so a
// User value can be written to a response as is.
type User struct {
	// UserID is the server-assigned identifier. It also derives the key of the
	// user's case partition.
	UserID int64 `json:"user_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never plaintext.
	PasswordHash string `json:"-"`

	// RecoveryToken is the current single-use self-service reset token.
	// Empty means no token is issued.
	RecoveryToken string `json:"-"`

	// MustChangePassword is set by an admin force reset. While it is true the
	// user may only read its own profile and change its password.
	MustChangePassword bool `json:"must_change_password"`

	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether u has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName joins first and last name.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CredentialsUpdate is the password lifecycle write of one account.
// A nil RecoveryToken keeps the stored token. A non-nil ExpectedRecoveryToken
// makes the write conditional on the stored token still holding that value.
type CredentialsUpdate struct {
	UserID                int64
	PasswordHash          string
	MustChangePassword    bool
	RecoveryToken         *string
	ExpectedRecoveryToken *string
}
