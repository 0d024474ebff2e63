// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/MKhiriev/go-pericias/models"
)

const (
	caseIDParam      = "caseID"
	interviewIDParam = "interviewID"
	userIDParam      = "userID"

	defaultReportContentType = "application/octet-stream"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// request timeout to every call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs to /api/auth/register and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.send(h.request(ctx).SetBody(req).SetResult(&registered), resty.MethodPost, "/api/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}

	if err = h.keepBearer(resp); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register: %w", err)
	}
	return registered, nil
}

// Login POSTs to /api/auth/login and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var user models.User

	resp, err := h.send(h.request(ctx).SetBody(req).SetResult(&user), resty.MethodPost, "/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	if err = h.keepBearer(resp); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	var token models.RecoveryTokenResponse

	if _, err := h.send(h.request(ctx).SetBody(req).SetResult(&token), resty.MethodPost, "/api/auth/reset"); err != nil {
		return "", fmt.Errorf("reset password request: %w", err)
	}
	return token.RecoveryToken, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	if _, err := h.send(h.authedRequest(ctx).SetResult(&user), resty.MethodGet, "/api/auth/me"); err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if _, err := h.send(h.authedRequest(ctx).SetBody(req), resty.MethodPut, "/api/auth/password"); err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	if _, err := h.send(h.authedRequest(ctx).SetResult(&users), resty.MethodGet, "/api/admin/users"); err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	return users, nil
}

func (h *httpServerAdapter) ForceReset(ctx context.Context, userID int64, req models.ForceResetRequest) (string, error) {
	var token models.RecoveryTokenResponse

	r := h.authedRequest(ctx).
		SetPathParam(userIDParam, formatID(userID)).
		SetBody(req).
		SetResult(&token)
	if _, err := h.send(r, resty.MethodPost, "/api/admin/users/{userID}/reset"); err != nil {
		return "", fmt.Errorf("force reset request: %w", err)
	}
	return token.RecoveryToken, nil
}

// ListCases GETs /api/cases. Empty filter fields are not sent.
func (h *httpServerAdapter) ListCases(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	var cases []models.Case

	r := h.authedRequest(ctx).SetResult(&cases)
	if filter.Status != "" {
		r.SetQueryParam("status", string(filter.Status))
	}
	if filter.Division != "" {
		r.SetQueryParam("division", filter.Division)
	}
	if filter.ProcessNumber != "" {
		r.SetQueryParam("process_number", filter.ProcessNumber)
	}

	if _, err := h.send(r, resty.MethodGet, "/api/cases"); err != nil {
		return nil, fmt.Errorf("list cases request: %w", err)
	}
	return cases, nil
}

func (h *httpServerAdapter) CreateCase(ctx context.Context, req models.NewCaseRequest) (models.Case, error) {
	var created models.Case

	if _, err := h.send(h.authedRequest(ctx).SetBody(req).SetResult(&created), resty.MethodPost, "/api/cases"); err != nil {
		return models.Case{}, fmt.Errorf("create case request: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) Divisions(ctx context.Context) (models.DivisionsResponse, error) {
	var divisions models.DivisionsResponse

	if _, err := h.send(h.authedRequest(ctx).SetResult(&divisions), resty.MethodGet, "/api/cases/divisions"); err != nil {
		return models.DivisionsResponse{}, fmt.Errorf("divisions request: %w", err)
	}
	return divisions, nil
}

func (h *httpServerAdapter) GetCase(ctx context.Context, caseID int64) (models.Case, error) {
	var c models.Case

	r := h.authedRequest(ctx).SetPathParam(caseIDParam, formatID(caseID)).SetResult(&c)
	if _, err := h.send(r, resty.MethodGet, "/api/cases/{caseID}"); err != nil {
		return models.Case{}, fmt.Errorf("get case request: %w", err)
	}
	return c, nil
}

func (h *httpServerAdapter) DeleteCase(ctx context.Context, caseID int64) error {
	r := h.authedRequest(ctx).SetPathParam(caseIDParam, formatID(caseID))
	if _, err := h.send(r, resty.MethodDelete, "/api/cases/{caseID}"); err != nil {
		return fmt.Errorf("delete case request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) SetCaseStatus(ctx context.Context, caseID int64, status models.CaseStatus) (models.Case, error) {
	c, err := h.caseTransition(ctx, caseID, resty.MethodPut, "/api/cases/{caseID}/status", models.StatusRequest{Status: status})
	if err != nil {
		return models.Case{}, fmt.Errorf("set case status request: %w", err)
	}
	return c, nil
}

func (h *httpServerAdapter) FinalizeCase(ctx context.Context, caseID int64, req models.FinalizeRequest) (models.Case, error) {
	c, err := h.caseTransition(ctx, caseID, resty.MethodPost, "/api/cases/{caseID}/finalize", req)
	if err != nil {
		return models.Case{}, fmt.Errorf("finalize case request: %w", err)
	}
	return c, nil
}

func (h *httpServerAdapter) RegisterPayment(ctx context.Context, caseID int64, req models.PaymentRequest) (models.Case, error) {
	c, err := h.caseTransition(ctx, caseID, resty.MethodPost, "/api/cases/{caseID}/payment", req)
	if err != nil {
		return models.Case{}, fmt.Errorf("register payment request: %w", err)
	}
	return c, nil
}

func (h *httpServerAdapter) caseTransition(ctx context.Context, caseID int64, method, path string, body any) (models.Case, error) {
	var c models.Case

	r := h.authedRequest(ctx).
		SetPathParam(caseIDParam, formatID(caseID)).
		SetBody(body).
		SetResult(&c)
	if _, err := h.send(r, method, path); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

func (h *httpServerAdapter) ListInterviews(ctx context.Context, caseID int64) ([]models.Interview, error) {
	var interviews []models.Interview

	r := h.authedRequest(ctx).SetPathParam(caseIDParam, formatID(caseID)).SetResult(&interviews)
	if _, err := h.send(r, resty.MethodGet, "/api/cases/{caseID}/interviews"); err != nil {
		return nil, fmt.Errorf("list interviews request: %w", err)
	}
	return interviews, nil
}

func (h *httpServerAdapter) AddInterview(ctx context.Context, caseID int64, req models.NewInterviewRequest) (models.Interview, error) {
	var iv models.Interview

	r := h.authedRequest(ctx).
		SetPathParam(caseIDParam, formatID(caseID)).
		SetBody(req).
		SetResult(&iv)
	if _, err := h.send(r, resty.MethodPost, "/api/cases/{caseID}/interviews"); err != nil {
		return models.Interview{}, fmt.Errorf("add interview request: %w", err)
	}
	return iv, nil
}

func (h *httpServerAdapter) SetInterviewStatus(ctx context.Context, interviewID int64, status models.InterviewStatus) (models.Interview, error) {
	var iv models.Interview

	r := h.authedRequest(ctx).
		SetPathParam(interviewIDParam, formatID(interviewID)).
		SetBody(models.InterviewStatusRequest{Status: status}).
		SetResult(&iv)
	if _, err := h.send(r, resty.MethodPut, "/api/interviews/{interviewID}/status"); err != nil {
		return models.Interview{}, fmt.Errorf("set interview status request: %w", err)
	}
	return iv, nil
}

func (h *httpServerAdapter) DeleteInterview(ctx context.Context, interviewID int64) error {
	r := h.authedRequest(ctx).SetPathParam(interviewIDParam, formatID(interviewID))
	if _, err := h.send(r, resty.MethodDelete, "/api/interviews/{interviewID}"); err != nil {
		return fmt.Errorf("delete interview request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) UpcomingInterviews(ctx context.Context) ([]models.UpcomingInterview, error) {
	var upcoming []models.UpcomingInterview

	if _, err := h.send(h.authedRequest(ctx).SetResult(&upcoming), resty.MethodGet, "/api/interviews/upcoming"); err != nil {
		return nil, fmt.Errorf("upcoming interviews request: %w", err)
	}
	return upcoming, nil
}

func (h *httpServerAdapter) MonthCalendar(ctx context.Context, year, month int) (models.MonthCalendar, error) {
	var cal models.MonthCalendar

	r := h.authedRequest(ctx).
		SetQueryParam("year", strconv.Itoa(year)).
		SetQueryParam("month", strconv.Itoa(month)).
		SetResult(&cal)
	if _, err := h.send(r, resty.MethodGet, "/api/interviews/calendar"); err != nil {
		return models.MonthCalendar{}, fmt.Errorf("month calendar request: %w", err)
	}
	return cal, nil
}

func (h *httpServerAdapter) UploadReport(ctx context.Context, caseID int64, contentType string, body io.Reader) (models.ReportObject, error) {
	var obj models.ReportObject

	if contentType == "" {
		contentType = defaultReportContentType
	}

	r := h.authedRequest(ctx).
		SetPathParam(caseIDParam, formatID(caseID)).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		SetResult(&obj)
	if _, err := h.send(r, resty.MethodPut, "/api/cases/{caseID}/report"); err != nil {
		return models.ReportObject{}, fmt.Errorf("upload report request: %w", err)
	}
	return obj, nil
}

func (h *httpServerAdapter) DownloadReport(ctx context.Context, caseID int64) ([]byte, string, error) {
	r := h.authedRequest(ctx).
		SetPathParam(caseIDParam, formatID(caseID)).
		SetHeader("Accept", "*/*")
	resp, err := h.send(r, resty.MethodGet, "/api/cases/{caseID}/report")
	if err != nil {
		return nil, "", fmt.Errorf("download report request: %w", err)
	}
	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

func (h *httpServerAdapter) FinanceSummary(ctx context.Context) (models.FinancialSummary, error) {
	var summary models.FinancialSummary

	if _, err := h.send(h.authedRequest(ctx).SetResult(&summary), resty.MethodGet, "/api/finance/summary"); err != nil {
		return models.FinancialSummary{}, fmt.Errorf("finance summary request: %w", err)
	}
	return summary, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.send(h.request(ctx).SetHeader("Accept", "text/plain"), resty.MethodGet, "/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// send executes r and maps non-2xx answers to the package sentinels.
func (h *httpServerAdapter) send(r *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := r.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.send").Str("method", method).Str("path", path).Msg("request failed")
		return nil, err
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Int("status", resp.StatusCode()).Msg("server returned error")
		return nil, err
	}
	return resp, nil
}

func (h *httpServerAdapter) keepBearer(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyToken, err)
	}

	h.SetToken(token)
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
