// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/MKhiriev/go-pericias/models"
)

// Credential field names.
const (
	FieldFirstName     = "first_name"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldRecoveryToken = "recovery_token"
)

// CredentialsValidator validates the account payloads: register, login,
// password change, token reset and admin force reset.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validate(credentialValues{
			firstName: value.FirstName, email: value.Email, password: value.Password,
		}, defaultFields(fields, FieldFirstName, FieldEmail, FieldPassword))
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)

	case models.LoginRequest:
		// a short password is still checked against the hash so login never
		// reveals the length policy
		return v.validate(credentialValues{email: value.Email}, defaultFields(fields, FieldEmail))
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ChangePasswordRequest:
		return v.validate(credentialValues{password: value.NewPassword}, defaultFields(fields, FieldPassword))
	case *models.ChangePasswordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validate(credentialValues{
			email: value.Email, password: value.NewPassword, recoveryToken: value.RecoveryToken,
		}, defaultFields(fields, FieldEmail, FieldRecoveryToken, FieldPassword))
	case *models.ResetPasswordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ForceResetRequest:
		return v.validate(credentialValues{password: value.TemporaryPassword}, defaultFields(fields, FieldPassword))
	case *models.ForceResetRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

type credentialValues struct {
	firstName     string
	email         string
	password      string
	recoveryToken string
}

func (v *CredentialsValidator) validate(values credentialValues, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(values.firstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldEmail:
			if !isEmail(values.email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len([]rune(values.password)) < utils.MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldRecoveryToken:
			if values.recoveryToken == "" {
				return ErrEmptyRecoveryCode
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// isEmail accepts a bare address such as "ana@example.com". Display names
// ("Ana <ana@example.com>") are rejected.
func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
