// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-pericias/models"
)

// Case and interview field names.
const (
	FieldDivision        = "division"
	FieldProcessNumber   = "process_number"
	FieldAppointmentDate = "appointment_date"
	FieldDeadlineDays    = "deadline_days"
	FieldInterviewCount  = "interview_count"
	FieldAmounts         = "amounts"
	FieldStatus          = "status"
	FieldDeliveryDate    = "delivery_date"

	FieldInterviewDate   = "interview_date"
	FieldInterviewTime   = "interview_time"
	FieldIntervieweeName = "interviewee_name"
)

// InterviewTimeLayout is the accepted "HH:MM" form of an interview time.
const InterviewTimeLayout = "15:04"

// CaseValidator validates case, lifecycle and interview payloads.
//
// Division membership is not checked here: the configured set lives in the
// case service.
type CaseValidator struct{}

func NewCaseValidator() Validator {
	return &CaseValidator{}
}

func (v *CaseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewCaseRequest:
		return v.validateNewCase(value, defaultFields(fields,
			FieldDivision, FieldProcessNumber, FieldAppointmentDate, FieldDeadlineDays, FieldInterviewCount, FieldAmounts))
	case *models.NewCaseRequest:
		return v.Validate(ctx, *value, fields...)

	case models.StatusRequest:
		if !value.Status.Valid() {
			return ErrInvalidCaseStatus
		}
		return nil
	case *models.StatusRequest:
		return v.Validate(ctx, *value, fields...)

	case models.FinalizeRequest:
		if value.DeliveryDate.IsZero() {
			return ErrEmptyDeliveryDate
		}
		if value.ReceivedAmount < 0 {
			return ErrNegativeAmount
		}
		return nil
	case *models.FinalizeRequest:
		return v.Validate(ctx, *value, fields...)

	case models.PaymentRequest:
		if value.ReceivedAmount < 0 {
			return ErrNegativeAmount
		}
		return nil
	case *models.PaymentRequest:
		return v.Validate(ctx, *value, fields...)

	case models.CaseFilter:
		if value.Status != "" && !value.Status.Valid() {
			return ErrInvalidCaseStatus
		}
		return nil
	case *models.CaseFilter:
		return v.Validate(ctx, *value, fields...)

	case models.NewInterviewRequest:
		return v.validateNewInterview(value, defaultFields(fields,
			FieldInterviewDate, FieldInterviewTime, FieldIntervieweeName))
	case *models.NewInterviewRequest:
		return v.Validate(ctx, *value, fields...)

	case models.InterviewStatusRequest:
		if !value.Status.Valid() {
			return ErrInvalidInterviewState
		}
		return nil
	case *models.InterviewStatusRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CaseValidator) validateNewCase(req models.NewCaseRequest, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldDivision:
			if strings.TrimSpace(req.Division) == "" {
				return ErrEmptyDivision
			}
		case FieldProcessNumber:
			if strings.TrimSpace(req.ProcessNumber) == "" {
				return ErrEmptyProcessNumber
			}
		case FieldAppointmentDate:
			if req.AppointmentDate.IsZero() {
				return ErrEmptyAppointmentDate
			}
		case FieldDeadlineDays:
			if req.DeadlineDays < 0 {
				return ErrNegativeDeadlineDays
			}
		case FieldInterviewCount:
			if req.InterviewCount < 0 {
				return ErrNegativeInterviews
			}
		case FieldAmounts:
			if req.PredictedAmount < 0 {
				return ErrNegativeAmount
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *CaseValidator) validateNewInterview(req models.NewInterviewRequest, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldInterviewDate:
			if req.Date.IsZero() {
				return ErrEmptyInterviewDate
			}
		case FieldInterviewTime:
			if !IsInterviewTime(req.Time) {
				return ErrInvalidInterviewTime
			}
		case FieldIntervieweeName:
			if strings.TrimSpace(req.IntervieweeName) == "" {
				return ErrEmptyIntervieweeName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// IsInterviewTime reports whether s is a valid zero-padded "HH:MM" time.
func IsInterviewTime(s string) bool {
	if len(s) != len(InterviewTimeLayout) {
		return false
	}
	_, err := time.Parse(InterviewTimeLayout, s)
	return err == nil
}
