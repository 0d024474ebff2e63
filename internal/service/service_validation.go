// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pericias/internal/validators"
	"github.com/MKhiriev/go-pericias/models"
)

// AuthValidationService checks credential payloads before delegating.
// Validation failures are returned as ErrInvalidArgument.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewCredentialsValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RegisterResponse{}, invalidArgument(err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalidArgument(err)
	}
	return v.inner.Authenticate(ctx, req)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return invalidArgument(err)
	}
	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AuthValidationService) ResetWithToken(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", invalidArgument(err)
	}
	return v.inner.ResetWithToken(ctx, req)
}

func (v *AuthValidationService) AdminForceReset(ctx context.Context, actor models.Identity, userID int64, req models.ForceResetRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", invalidArgument(err)
	}
	return v.inner.AdminForceReset(ctx, actor, userID, req)
}

func (v *AuthValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *AuthValidationService) ListUsers(ctx context.Context, actor models.Identity) ([]models.User, error) {
	return v.inner.ListUsers(ctx, actor)
}

func (v *AuthValidationService) EnsureAdmin(ctx context.Context) (models.User, error) {
	return v.inner.EnsureAdmin(ctx)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Identify(ctx context.Context, tokenString string) (models.Identity, error) {
	return v.inner.Identify(ctx, tokenString)
}

// CaseValidationService checks case and lifecycle payloads before
// delegating.
type CaseValidationService struct {
	inner     CaseService
	validator validators.Validator
}

func NewCaseValidationService() CaseServiceWrapper {
	return &CaseValidationService{validator: validators.NewCaseValidator()}
}

func (v *CaseValidationService) Wrap(inner CaseService) CaseService {
	v.inner = inner
	return v
}

func (v *CaseValidationService) CreateCase(ctx context.Context, userID int64, req models.NewCaseRequest) (models.Case, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Case{}, invalidArgument(err)
	}
	return v.inner.CreateCase(ctx, userID, req)
}

func (v *CaseValidationService) GetCase(ctx context.Context, userID, caseID int64) (models.Case, error) {
	return v.inner.GetCase(ctx, userID, caseID)
}

func (v *CaseValidationService) ListCases(ctx context.Context, userID int64, filter models.CaseFilter) ([]models.Case, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, invalidArgument(err)
	}
	return v.inner.ListCases(ctx, userID, filter)
}

func (v *CaseValidationService) DeleteCase(ctx context.Context, userID, caseID int64) error {
	return v.inner.DeleteCase(ctx, userID, caseID)
}

func (v *CaseValidationService) Divisions(ctx context.Context, userID int64) (models.DivisionsResponse, error) {
	return v.inner.Divisions(ctx, userID)
}

func (v *CaseValidationService) SetStatus(ctx context.Context, userID, caseID int64, req models.StatusRequest) (models.Case, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Case{}, invalidArgument(err)
	}
	return v.inner.SetStatus(ctx, userID, caseID, req)
}

func (v *CaseValidationService) Finalize(ctx context.Context, userID, caseID int64, req models.FinalizeRequest) (models.Case, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Case{}, invalidArgument(err)
	}
	return v.inner.Finalize(ctx, userID, caseID, req)
}

func (v *CaseValidationService) RegisterPayment(ctx context.Context, userID, caseID int64, req models.PaymentRequest) (models.Case, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Case{}, invalidArgument(err)
	}
	return v.inner.RegisterPayment(ctx, userID, caseID, req)
}

// InterviewValidationService checks interview payloads before delegating.
type InterviewValidationService struct {
	inner     InterviewService
	validator validators.Validator
}

func NewInterviewValidationService() InterviewServiceWrapper {
	return &InterviewValidationService{validator: validators.NewCaseValidator()}
}

func (v *InterviewValidationService) Wrap(inner InterviewService) InterviewService {
	v.inner = inner
	return v
}

func (v *InterviewValidationService) AddInterview(ctx context.Context, userID, caseID int64, req models.NewInterviewRequest) (models.Interview, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Interview{}, invalidArgument(err)
	}
	return v.inner.AddInterview(ctx, userID, caseID, req)
}

func (v *InterviewValidationService) ListCaseInterviews(ctx context.Context, userID, caseID int64) ([]models.Interview, error) {
	return v.inner.ListCaseInterviews(ctx, userID, caseID)
}

func (v *InterviewValidationService) SetInterviewStatus(ctx context.Context, userID, interviewID int64, req models.InterviewStatusRequest) (models.Interview, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Interview{}, invalidArgument(err)
	}
	return v.inner.SetInterviewStatus(ctx, userID, interviewID, req)
}

func (v *InterviewValidationService) DeleteInterview(ctx context.Context, userID, interviewID int64) error {
	return v.inner.DeleteInterview(ctx, userID, interviewID)
}

func (v *InterviewValidationService) UpcomingInterviews(ctx context.Context, userID int64) ([]models.UpcomingInterview, error) {
	return v.inner.UpcomingInterviews(ctx, userID)
}

func (v *InterviewValidationService) MonthCalendar(ctx context.Context, userID int64, year, month int) (models.MonthCalendar, error) {
	return v.inner.MonthCalendar(ctx, userID, year, month)
}

// compile-time checks
var (
	_ AuthService      = (*AuthValidationService)(nil)
	_ CaseService      = (*CaseValidationService)(nil)
	_ InterviewService = (*InterviewValidationService)(nil)
)
