// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the pericias server.
//
// The primary abstraction is [ServerAdapter], which decouples the TUI from the
// REST protocol. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pericias/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the pericias server. Implementations
// handle serialisation, the bearer token and error mapping.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns it together with the recovery
	// token, which the server shows only once.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates by email and password and returns the user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ResetPassword consumes a recovery token and returns the new one.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error)

	// Me returns the authenticated user.
	Me(ctx context.Context) (models.User, error)

	// ChangePassword sets a new password and clears a pending forced change.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// ListUsers returns every account. Admin only.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ForceReset sets a temporary password for userID and returns the new
	// recovery token. Admin only.
	ForceReset(ctx context.Context, userID int64, req models.ForceResetRequest) (string, error)

	ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	CreateCase(ctx context.Context, req models.NewCaseRequest) (models.Case, error)
	Divisions(ctx context.Context) (models.DivisionsResponse, error)
	GetCase(ctx context.Context, caseID int64) (models.Case, error)
	DeleteCase(ctx context.Context, caseID int64) error
	SetCaseStatus(ctx context.Context, caseID int64, status models.CaseStatus) (models.Case, error)
	FinalizeCase(ctx context.Context, caseID int64, req models.FinalizeRequest) (models.Case, error)
	RegisterPayment(ctx context.Context, caseID int64, req models.PaymentRequest) (models.Case, error)

	ListInterviews(ctx context.Context, caseID int64) ([]models.Interview, error)
	AddInterview(ctx context.Context, caseID int64, req models.NewInterviewRequest) (models.Interview, error)
	SetInterviewStatus(ctx context.Context, interviewID int64, status models.InterviewStatus) (models.Interview, error)
	DeleteInterview(ctx context.Context, interviewID int64) error
	UpcomingInterviews(ctx context.Context) ([]models.UpcomingInterview, error)
	MonthCalendar(ctx context.Context, year, month int) (models.MonthCalendar, error)

	// UploadReport stores body as the report of caseID, replacing any
	// previous one.
	UploadReport(ctx context.Context, caseID int64, contentType string, body io.Reader) (models.ReportObject, error)

	// DownloadReport returns the stored report of caseID and its content type.
	DownloadReport(ctx context.Context, caseID int64) ([]byte, string, error)

	FinanceSummary(ctx context.Context) (models.FinancialSummary, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
