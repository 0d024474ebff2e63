// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "host and port", address: "localhost:8080"},
		{name: "full url", address: "http://localhost:8080/"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)

		w.Header().Set("Authorization", "Bearer issued-token")
		writeJSON(t, w, http.StatusCreated, models.RegisterResponse{
			User:          models.User{UserID: 3, Email: req.Email},
			RecoveryToken: "ABCD-EFGH",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Email: "ana@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.User.UserID)
	assert.Equal(t, "ABCD-EFGH", got.RecoveryToken)
	assert.Equal(t, "issued-token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "email already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "ana@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email already registered")
	assert.Empty(t, a.Token())
}

func TestLogin_MissingBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{UserID: 3})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer login-token")
		writeJSON(t, w, http.StatusOK, models.User{UserID: 3, Role: models.RoleNormal})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, "login-token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthedRequest_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.User{UserID: 3, MustChangePassword: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  stored-token ")

	user, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, user.MustChangePassword)
}

func TestResetPassword_ReturnsNewToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/reset", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.RecoveryTokenResponse{RecoveryToken: "NEW-TOKEN"})
	}))
	defer srv.Close()

	token, err := newTestAdapter(t, srv.URL).ResetPassword(context.Background(), models.ResetPasswordRequest{})
	require.NoError(t, err)
	assert.Equal(t, "NEW-TOKEN", token)
}

func TestChangePassword_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/auth/password", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ChangePassword(context.Background(), models.ChangePasswordRequest{NewPassword: "secret2"})
	assert.NoError(t, err)
}

func TestForceReset_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users/12/reset", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.RecoveryTokenResponse{RecoveryToken: "T"})
	}))
	defer srv.Close()

	token, err := newTestAdapter(t, srv.URL).ForceReset(context.Background(), 12, models.ForceResetRequest{TemporaryPassword: "temp12"})
	require.NoError(t, err)
	assert.Equal(t, "T", token)
}

func TestListUsers_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Cases ───────────────────────────────────────────────────────────────────

func TestListCases_Filter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cases", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "open", q.Get("status"))
		assert.Equal(t, "2VF", q.Get("division"))
		assert.False(t, q.Has("process_number"))

		writeJSON(t, w, http.StatusOK, []models.Case{{ID: 1, Division: "2VF", Status: models.CaseOpen}})
	}))
	defer srv.Close()

	cases, err := newTestAdapter(t, srv.URL).ListCases(context.Background(), models.CaseFilter{Status: models.CaseOpen, Division: "2VF"})
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "2VF", cases[0].Division)
}

func TestCreateCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.NewCaseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.NewDate(2024, time.January, 1), req.AppointmentDate)

		writeJSON(t, w, http.StatusCreated, models.Case{ID: 9, AppointmentDate: req.AppointmentDate, DeadlineDays: req.DeadlineDays})
	}))
	defer srv.Close()

	c, err := newTestAdapter(t, srv.URL).CreateCase(context.Background(), models.NewCaseRequest{
		Division:        "1VF",
		AppointmentDate: models.NewDate(2024, time.January, 1),
		DeadlineDays:    30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.ID)
	assert.Equal(t, 30, c.DeadlineDays)
}

func TestCaseTransitions_Paths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Case{ID: 4, Status: models.CaseDelivered})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.SetCaseStatus(ctx, 4, models.CaseInReview)
	require.NoError(t, err)
	_, err = a.FinalizeCase(ctx, 4, models.FinalizeRequest{DeliveryDate: models.NewDate(2024, time.February, 1)})
	require.NoError(t, err)
	_, err = a.RegisterPayment(ctx, 4, models.PaymentRequest{ReceivedAmount: 10})
	require.NoError(t, err)
	_, err = a.GetCase(ctx, 4)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PUT /api/cases/4/status",
		"POST /api/cases/4/finalize",
		"POST /api/cases/4/payment",
		"GET /api/cases/4",
	}, paths)
}

func TestDeleteCase_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "not found"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteCase(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetCaseStatus_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid argument"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SetCaseStatus(context.Background(), 1, models.CaseReceived)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Interviews ──────────────────────────────────────────────────────────────

func TestInterviews_Paths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case strings.HasSuffix(r.URL.Path, "/interviews") && r.Method == http.MethodGet:
			writeJSON(t, w, http.StatusOK, []models.Interview{{ID: 1}})
		default:
			writeJSON(t, w, http.StatusOK, models.Interview{ID: 1, Status: models.InterviewDone})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	list, err := a.ListInterviews(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = a.AddInterview(ctx, 2, models.NewInterviewRequest{IntervieweeName: "Maria"})
	require.NoError(t, err)

	iv, err := a.SetInterviewStatus(ctx, 1, models.InterviewDone)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewDone, iv.Status)

	require.NoError(t, a.DeleteInterview(ctx, 1))

	assert.Equal(t, []string{
		"GET /api/cases/2/interviews",
		"POST /api/cases/2/interviews",
		"PUT /api/interviews/1/status",
		"DELETE /api/interviews/1",
	}, paths)
}

func TestMonthCalendar_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/interviews/calendar", r.URL.Path)
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		assert.Equal(t, "2", r.URL.Query().Get("month"))
		writeJSON(t, w, http.StatusOK, models.MonthCalendar{Year: 2024, Month: 2})
	}))
	defer srv.Close()

	cal, err := newTestAdapter(t, srv.URL).MonthCalendar(context.Background(), 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cal.Month)
}

func TestUpcomingInterviews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.UpcomingInterview{{ProcessNumber: "0001"}})
	}))
	defer srv.Close()

	upcoming, err := newTestAdapter(t, srv.URL).UpcomingInterviews(context.Background())
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "0001", upcoming[0].ProcessNumber)
}

// ── Reports, finance, version ───────────────────────────────────────────────

func TestUploadReport_DefaultContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/cases/5/report", r.URL.Path)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "laudo", string(body))

		writeJSON(t, w, http.StatusCreated, models.ReportObject{Key: "user_1/case_5", Size: int64(len(body))})
	}))
	defer srv.Close()

	obj, err := newTestAdapter(t, srv.URL).UploadReport(context.Background(), 5, "", strings.NewReader("laudo"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), obj.Size)
}

func TestUploadReport_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		writeJSON(t, w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "report too large"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadReport(context.Background(), 5, "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDownloadReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7"))
	}))
	defer srv.Close()

	body, contentType, err := newTestAdapter(t, srv.URL).DownloadReport(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(body))
	assert.Equal(t, "application/pdf", contentType)
}

func TestFinanceSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/finance/summary", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.FinancialSummary{Totals: models.FinancialTotals{Predicted: 100, Received: 40, Pending: 60}})
	}))
	defer srv.Close()

	summary, err := newTestAdapter(t, srv.URL).FinanceSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60.0, summary.Totals.Pending)
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).FinanceSummary(context.Background())
	assert.Error(t, err)
}
