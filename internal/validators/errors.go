// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName    = errors.New("first name is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrPasswordTooShort  = errors.New("password must have at least 6 characters")
	ErrEmptyRecoveryCode = errors.New("recovery token is required")

	ErrEmptyDivision        = errors.New("division is required")
	ErrEmptyProcessNumber   = errors.New("process number is required")
	ErrEmptyAppointmentDate = errors.New("appointment date is required")
	ErrNegativeDeadlineDays = errors.New("deadline days cannot be negative")
	ErrNegativeInterviews   = errors.New("interview count cannot be negative")
	ErrNegativeAmount       = errors.New("amounts cannot be negative")
	ErrInvalidCaseStatus    = errors.New("invalid case status")
	ErrEmptyDeliveryDate    = errors.New("delivery date is required")

	ErrEmptyInterviewDate    = errors.New("interview date is required")
	ErrInvalidInterviewTime  = errors.New("interview time must be HH:MM")
	ErrEmptyIntervieweeName  = errors.New("interviewee name is required")
	ErrInvalidInterviewState = errors.New("invalid interview status")
)
