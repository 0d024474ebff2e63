// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/service"
	"github.com/MKhiriev/go-pericias/models"
)

// Service fakes. Each method delegates to its fn field; an unset field
// returns zero values.

type fakeAuthService struct {
	registerFn        func(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	authenticateFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
	changePasswordFn  func(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	resetWithTokenFn  func(ctx context.Context, req models.ResetPasswordRequest) (string, error)
	adminForceResetFn func(ctx context.Context, actor models.Identity, userID int64, req models.ForceResetRequest) (string, error)
	getUserFn         func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn       func(ctx context.Context, actor models.Identity) ([]models.User, error)
	createTokenFn     func(ctx context.Context, user models.User) (models.Token, error)
	identifyFn        func(ctx context.Context, token string) (models.Identity, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	if f.registerFn == nil {
		return models.RegisterResponse{}, nil
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if f.authenticateFn == nil {
		return models.User{}, nil
	}
	return f.authenticateFn(ctx, req)
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if f.changePasswordFn == nil {
		return nil
	}
	return f.changePasswordFn(ctx, userID, req)
}

func (f *fakeAuthService) ResetWithToken(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	if f.resetWithTokenFn == nil {
		return "", nil
	}
	return f.resetWithTokenFn(ctx, req)
}

func (f *fakeAuthService) AdminForceReset(ctx context.Context, actor models.Identity, userID int64, req models.ForceResetRequest) (string, error) {
	if f.adminForceResetFn == nil {
		return "", nil
	}
	return f.adminForceResetFn(ctx, actor, userID, req)
}

func (f *fakeAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if f.getUserFn == nil {
		return models.User{UserID: userID}, nil
	}
	return f.getUserFn(ctx, userID)
}

func (f *fakeAuthService) ListUsers(ctx context.Context, actor models.Identity) ([]models.User, error) {
	if f.listUsersFn == nil {
		return []models.User{}, nil
	}
	return f.listUsersFn(ctx, actor)
}

func (f *fakeAuthService) EnsureAdmin(context.Context) (models.User, error) {
	return models.User{}, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
	}
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(context.Context, string) (models.Token, error) {
	return models.Token{}, nil
}

func (f *fakeAuthService) Identify(ctx context.Context, token string) (models.Identity, error) {
	if f.identifyFn == nil {
		return models.Identity{}, service.ErrUnauthorized
	}
	return f.identifyFn(ctx, token)
}

type fakeCaseService struct {
	createFn    func(ctx context.Context, userID int64, req models.NewCaseRequest) (models.Case, error)
	getFn       func(ctx context.Context, userID, caseID int64) (models.Case, error)
	listFn      func(ctx context.Context, userID int64, filter models.CaseFilter) ([]models.Case, error)
	deleteFn    func(ctx context.Context, userID, caseID int64) error
	divisionsFn func(ctx context.Context, userID int64) (models.DivisionsResponse, error)
	setStatusFn func(ctx context.Context, userID, caseID int64, req models.StatusRequest) (models.Case, error)
	finalizeFn  func(ctx context.Context, userID, caseID int64, req models.FinalizeRequest) (models.Case, error)
	paymentFn   func(ctx context.Context, userID, caseID int64, req models.PaymentRequest) (models.Case, error)
}

func (f *fakeCaseService) CreateCase(ctx context.Context, userID int64, req models.NewCaseRequest) (models.Case, error) {
	if f.createFn == nil {
		return models.Case{}, nil
	}
	return f.createFn(ctx, userID, req)
}

func (f *fakeCaseService) GetCase(ctx context.Context, userID, caseID int64) (models.Case, error) {
	if f.getFn == nil {
		return models.Case{ID: caseID}, nil
	}
	return f.getFn(ctx, userID, caseID)
}

func (f *fakeCaseService) ListCases(ctx context.Context, userID int64, filter models.CaseFilter) ([]models.Case, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, userID, filter)
}

func (f *fakeCaseService) DeleteCase(ctx context.Context, userID, caseID int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, userID, caseID)
}

func (f *fakeCaseService) Divisions(ctx context.Context, userID int64) (models.DivisionsResponse, error) {
	if f.divisionsFn == nil {
		return models.DivisionsResponse{}, nil
	}
	return f.divisionsFn(ctx, userID)
}

func (f *fakeCaseService) SetStatus(ctx context.Context, userID, caseID int64, req models.StatusRequest) (models.Case, error) {
	if f.setStatusFn == nil {
		return models.Case{}, nil
	}
	return f.setStatusFn(ctx, userID, caseID, req)
}

func (f *fakeCaseService) Finalize(ctx context.Context, userID, caseID int64, req models.FinalizeRequest) (models.Case, error) {
	if f.finalizeFn == nil {
		return models.Case{}, nil
	}
	return f.finalizeFn(ctx, userID, caseID, req)
}

func (f *fakeCaseService) RegisterPayment(ctx context.Context, userID, caseID int64, req models.PaymentRequest) (models.Case, error) {
	if f.paymentFn == nil {
		return models.Case{}, nil
	}
	return f.paymentFn(ctx, userID, caseID, req)
}

type fakeInterviewService struct {
	addFn       func(ctx context.Context, userID, caseID int64, req models.NewInterviewRequest) (models.Interview, error)
	listFn      func(ctx context.Context, userID, caseID int64) ([]models.Interview, error)
	setStatusFn func(ctx context.Context, userID, interviewID int64, req models.InterviewStatusRequest) (models.Interview, error)
	deleteFn    func(ctx context.Context, userID, interviewID int64) error
	upcomingFn  func(ctx context.Context, userID int64) ([]models.UpcomingInterview, error)
	calendarFn  func(ctx context.Context, userID int64, year, month int) (models.MonthCalendar, error)
}

func (f *fakeInterviewService) AddInterview(ctx context.Context, userID, caseID int64, req models.NewInterviewRequest) (models.Interview, error) {
	if f.addFn == nil {
		return models.Interview{}, nil
	}
	return f.addFn(ctx, userID, caseID, req)
}

func (f *fakeInterviewService) ListCaseInterviews(ctx context.Context, userID, caseID int64) ([]models.Interview, error) {
	if f.listFn == nil {
		return []models.Interview{}, nil
	}
	return f.listFn(ctx, userID, caseID)
}

func (f *fakeInterviewService) SetInterviewStatus(ctx context.Context, userID, interviewID int64, req models.InterviewStatusRequest) (models.Interview, error) {
	if f.setStatusFn == nil {
		return models.Interview{}, nil
	}
	return f.setStatusFn(ctx, userID, interviewID, req)
}

func (f *fakeInterviewService) DeleteInterview(ctx context.Context, userID, interviewID int64) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, userID, interviewID)
}

func (f *fakeInterviewService) UpcomingInterviews(ctx context.Context, userID int64) ([]models.UpcomingInterview, error) {
	if f.upcomingFn == nil {
		return []models.UpcomingInterview{}, nil
	}
	return f.upcomingFn(ctx, userID)
}

func (f *fakeInterviewService) MonthCalendar(ctx context.Context, userID int64, year, month int) (models.MonthCalendar, error) {
	if f.calendarFn == nil {
		return models.MonthCalendar{Year: year, Month: month}, nil
	}
	return f.calendarFn(ctx, userID, year, month)
}

type fakeFinanceService struct {
	summaryFn func(ctx context.Context, userID int64) (models.FinancialSummary, error)
}

func (f *fakeFinanceService) Summary(ctx context.Context, userID int64) (models.FinancialSummary, error) {
	if f.summaryFn == nil {
		return service.Summarize(nil), nil
	}
	return f.summaryFn(ctx, userID)
}

type fakeReportService struct {
	uploadFn   func(ctx context.Context, userID, caseID int64, contentType string, body io.Reader, size int64) (models.ReportObject, error)
	downloadFn func(ctx context.Context, userID, caseID int64) (io.ReadCloser, models.ReportObject, error)
}

func (f *fakeReportService) UploadReport(ctx context.Context, userID, caseID int64, contentType string, body io.Reader, size int64) (models.ReportObject, error) {
	if f.uploadFn == nil {
		return models.ReportObject{}, nil
	}
	return f.uploadFn(ctx, userID, caseID, contentType, body, size)
}

func (f *fakeReportService) DownloadReport(ctx context.Context, userID, caseID int64) (io.ReadCloser, models.ReportObject, error) {
	if f.downloadFn == nil {
		return io.NopCloser(strings.NewReader("")), models.ReportObject{}, nil
	}
	return f.downloadFn(ctx, userID, caseID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

// ---- helpers ----

const (
	userToken  = "user-token"
	adminToken = "admin-token"
	resetToken = "must-change-token"
)

// testIdentities resolves the three test bearer tokens.
func testIdentities(_ context.Context, token string) (models.Identity, error) {
	switch token {
	case userToken:
		return models.Identity{UserID: 7, Role: models.RoleNormal}, nil
	case adminToken:
		return models.Identity{UserID: 1, Role: models.RoleAdmin}, nil
	case resetToken:
		return models.Identity{UserID: 9, Role: models.RoleNormal, MustChangePassword: true}, nil
	default:
		return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// testServices returns a full set of fakes; the auth fake recognizes the
// test tokens.
func testServices() *service.Services {
	return &service.Services{
		AuthService:      &fakeAuthService{identifyFn: testIdentities},
		CaseService:      &fakeCaseService{},
		InterviewService: &fakeInterviewService{},
		FinanceService:   &fakeFinanceService{},
		ReportService:    &fakeReportService{},
		AppInfoService:   &fakeAppInfoService{version: "test-version"},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

// doRequest sends a request through router with an optional bearer token.
func doRequest(router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
