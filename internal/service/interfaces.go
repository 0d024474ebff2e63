// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pericias/models"
)

// AuthService is the credential store: accounts, password lifecycle,
// recovery tokens and session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	ResetWithToken(ctx context.Context, req models.ResetPasswordRequest) (string, error)
	AdminForceReset(ctx context.Context, actor models.Identity, userID int64, req models.ForceResetRequest) (string, error)

	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, actor models.Identity) ([]models.User, error)
	EnsureAdmin(ctx context.Context) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Identify(ctx context.Context, tokenString string) (models.Identity, error)
}

// CaseService owns case records and the status lifecycle.
type CaseService interface {
	CreateCase(ctx context.Context, userID int64, req models.NewCaseRequest) (models.Case, error)
	GetCase(ctx context.Context, userID, caseID int64) (models.Case, error)
	ListCases(ctx context.Context, userID int64, filter models.CaseFilter) ([]models.Case, error)
	DeleteCase(ctx context.Context, userID, caseID int64) error
	Divisions(ctx context.Context, userID int64) (models.DivisionsResponse, error)

	SetStatus(ctx context.Context, userID, caseID int64, req models.StatusRequest) (models.Case, error)
	Finalize(ctx context.Context, userID, caseID int64, req models.FinalizeRequest) (models.Case, error)
	RegisterPayment(ctx context.Context, userID, caseID int64, req models.PaymentRequest) (models.Case, error)
}

// InterviewService schedules and tracks the interviews of cases.
type InterviewService interface {
	AddInterview(ctx context.Context, userID, caseID int64, req models.NewInterviewRequest) (models.Interview, error)
	ListCaseInterviews(ctx context.Context, userID, caseID int64) ([]models.Interview, error)
	SetInterviewStatus(ctx context.Context, userID, interviewID int64, req models.InterviewStatusRequest) (models.Interview, error)
	DeleteInterview(ctx context.Context, userID, interviewID int64) error
	UpcomingInterviews(ctx context.Context, userID int64) ([]models.UpcomingInterview, error)
	MonthCalendar(ctx context.Context, userID int64, year, month int) (models.MonthCalendar, error)
}

// FinanceService is the read-only financial projection of a partition.
type FinanceService interface {
	Summary(ctx context.Context, userID int64) (models.FinancialSummary, error)
}

// ReportService archives the report file of a case.
type ReportService interface {
	UploadReport(ctx context.Context, userID, caseID int64, contentType string, body io.Reader, size int64) (models.ReportObject, error)
	DownloadReport(ctx context.Context, userID, caseID int64) (io.ReadCloser, models.ReportObject, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// CaseServiceWrapper decorates a CaseService.
type CaseServiceWrapper interface {
	Wrap(CaseService) CaseService
}

// InterviewServiceWrapper decorates an InterviewService.
type InterviewServiceWrapper interface {
	Wrap(InterviewService) InterviewService
}
