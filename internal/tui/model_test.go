// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pericias/internal/adapter"
	"github.com/MKhiriev/go-pericias/internal/app"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/mock"
	"github.com/MKhiriev/go-pericias/models"
)

func init() {
	statusTTL = time.Millisecond
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (appModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	m := newAppModel(context.Background(), a, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"), "1.0.0", logger.Nop())
	return m, a
}

// loggedIn puts m on the case list of a normal user.
func loggedIn(m appModel, cases ...models.Case) appModel {
	m.state.session = session{user: models.User{UserID: 7, FirstName: "Ana", Role: models.RoleNormal}}
	m.state.screen = screenCases
	m.cases = cases
	return m
}

// press sends a key and runs every command it produces.
func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(keyPress(k))
		m = run(t, next.(appModel), cmd)
	}
	return m
}

// run executes cmd synchronously and feeds the result back into m.
func run(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	if cmd == nil {
		return m
	}

	msg := cmd()
	switch msg := msg.(type) {
	case nil, tea.QuitMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = run(t, m, c)
		}
		return m
	}

	next, nextCmd := m.Update(msg)
	return run(t, next.(appModel), nextCmd)
}

func sampleCase(id int64, status models.CaseStatus) models.Case {
	return models.Case{
		ID:              id,
		Division:        "1VF",
		ProcessNumber:   fmt.Sprintf("000%d-11.2024", id),
		ActionClass:     "Guarda",
		AppointmentDate: models.NewDate(2024, time.January, 1),
		DeadlineDays:    30,
		Status:          status,
		PredictedAmount: 1000,
	}
}

// ── Welcome and auth ────────────────────────────────────────────────────────

func TestWelcome_Navigation(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "down", "enter")
	assert.Equal(t, screenRegister, m.state.screen)
	assert.Equal(t, "Register", m.form.title)

	m = press(t, m, "esc")
	assert.Equal(t, screenWelcome, m.state.screen)

	m = press(t, m, "down", "down", "down", "enter")
	assert.Equal(t, screenReset, m.state.screen)
}

func TestWelcome_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(appModel).quitByUser)
}

func TestLogin_Success(t *testing.T) {
	m, a := newTestModel(t)
	user := models.User{UserID: 7, Email: "ana@example.com", Role: models.RoleNormal}

	a.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ana@example.com", Password: "secret1"}).Return(user, nil)
	a.EXPECT().ListCases(gomock.Any(), models.CaseFilter{}).Return([]models.Case{sampleCase(1, models.CaseOpen)}, nil)
	a.EXPECT().Divisions(gomock.Any()).Return(models.DivisionsResponse{Configured: []string{"1VF", "2VF"}}, nil)

	m = press(t, m, "enter")
	require.Equal(t, screenLogin, m.state.screen)

	m.form.inputs[0].SetValue(" ana@example.com ")
	m.form.inputs[1].SetValue("secret1")
	m = press(t, m, "enter")

	assert.Equal(t, screenCases, m.state.screen)
	assert.Equal(t, int64(7), m.state.session.user.UserID)
	assert.False(t, m.state.loading)
	assert.Len(t, m.cases, 1)
	assert.Equal(t, "1VF", m.defaultDivision())
}

func TestLogin_TypingQDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "enter")

	next, _ := m.Update(keyPress("q"))
	m = next.(appModel)

	assert.False(t, m.quitByUser)
	assert.Equal(t, "q", m.form.inputs[0].Value())
}

func TestLogin_MustChangePassword(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 9, MustChangePassword: true}, nil)

	m = press(t, m, "enter")
	m.form.inputs[0].SetValue("bia@example.com")
	m.form.inputs[1].SetValue("temp123")
	m = press(t, m, "enter")

	assert.Equal(t, screenChangePassword, m.state.screen)
	assert.Equal(t, "Choose a new password", m.form.title)
}

func TestChangePassword_ClearsFlagAndOpensCases(t *testing.T) {
	m, a := newTestModel(t)
	m.state.session = session{user: models.User{UserID: 9, MustChangePassword: true}}
	next, _ := m.enter(screenChangePassword)
	m = next.(appModel)

	a.EXPECT().ChangePassword(gomock.Any(), models.ChangePasswordRequest{NewPassword: "newpass"}).Return(nil)
	a.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return(nil, nil)
	a.EXPECT().Divisions(gomock.Any()).Return(models.DivisionsResponse{}, nil)

	m.form.inputs[0].SetValue("newpass")
	m.form.inputs[1].SetValue("newpass")
	m = press(t, m, "enter")

	assert.Equal(t, screenCases, m.state.screen)
	assert.False(t, m.state.session.user.MustChangePassword)
}

func TestChangePassword_EscWhileForcedLogsOut(t *testing.T) {
	m, a := newTestModel(t)
	m.state.session = session{user: models.User{UserID: 9, MustChangePassword: true}}
	next, _ := m.enter(screenChangePassword)
	m = next.(appModel)

	a.EXPECT().SetToken("")

	m = press(t, m, "esc")
	assert.Equal(t, screenWelcome, m.state.screen)
	assert.False(t, m.state.session.loggedIn())
}

func TestLogin_Validation(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "enter", "enter")

	assert.Equal(t, modalError, m.state.modal)
	assert.Equal(t, app.MsgRequiredFields, m.state.err)

	m = press(t, m, "esc")
	assert.Equal(t, modalNone, m.state.modal)
	assert.Equal(t, screenLogin, m.state.screen)
}

func TestLogin_InvalidCredentialsAreUnified(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, fmt.Errorf("login request: %w: invalid credentials", adapter.ErrUnauthorized))

	m = press(t, m, "enter")
	m.form.inputs[0].SetValue("ana@example.com")
	m.form.inputs[1].SetValue("wrong!")
	m = press(t, m, "enter")

	assert.Equal(t, modalError, m.state.modal)
	assert.Equal(t, app.MsgInvalidCredentials, m.state.err)
	assert.False(t, m.state.submitting)
}

func TestRegister_ShowsRecoveryTokenOnce(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		FirstName: "Ana", LastName: "Lima", Email: "ana@example.com", Password: "secret1",
	}).Return(models.RegisterResponse{User: models.User{UserID: 3}, RecoveryToken: "ABCD-1234"}, nil)
	a.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return(nil, nil)
	a.EXPECT().Divisions(gomock.Any()).Return(models.DivisionsResponse{}, nil)

	m = press(t, m, "down", "enter")
	for i, v := range []string{"Ana", "Lima", "ana@example.com", "secret1", "secret1"} {
		m.form.inputs[i].SetValue(v)
	}
	m = press(t, m, "enter")

	assert.Equal(t, screenCases, m.state.screen)
	assert.Equal(t, modalToken, m.state.modal)
	assert.Equal(t, "ABCD-1234", m.state.recoveryToken)
	assert.Contains(t, m.View(), "ABCD-1234")

	m = press(t, m, "enter")
	assert.Equal(t, modalNone, m.state.modal)
	assert.Empty(t, m.state.recoveryToken)
	assert.NotContains(t, m.View(), "ABCD-1234")
}

func TestRegister_PasswordRules(t *testing.T) {
	tests := []struct {
		name     string
		password string
		repeat   string
		want     string
	}{
		{name: "too short", password: "abc", repeat: "abc", want: app.MsgPasswordTooShort},
		{name: "mismatch", password: "secret1", repeat: "secret2", want: app.MsgPasswordsDoNotMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m = press(t, m, "down", "enter")
			for i, v := range []string{"Ana", "", "ana@example.com", tt.password, tt.repeat} {
				m.form.inputs[i].SetValue(v)
			}
			m = press(t, m, "enter")

			assert.Equal(t, modalError, m.state.modal)
			assert.Equal(t, tt.want, m.state.err)
		})
	}
}

func TestReset_ShowsNewTokenAndGoesToLogin(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().ResetPassword(gomock.Any(), models.ResetPasswordRequest{
		Email: "ana@example.com", RecoveryToken: "OLD", NewPassword: "newpass",
	}).Return("NEW", nil)

	next, _ := m.enter(screenReset)
	m = next.(appModel)
	for i, v := range []string{"ana@example.com", "OLD", "newpass", "newpass"} {
		m.form.inputs[i].SetValue(v)
	}
	m = press(t, m, "enter")

	assert.Equal(t, screenLogin, m.state.screen)
	assert.Equal(t, modalToken, m.state.modal)
	assert.Equal(t, "NEW", m.state.recoveryToken)
}

// ── Cases ───────────────────────────────────────────────────────────────────

func TestCases_FilterModal(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseOpen))

	a.EXPECT().ListCases(gomock.Any(), models.CaseFilter{Status: models.CaseOpen, Division: "2VF"}).
		Return([]models.Case{}, nil)

	m = press(t, m, "f")
	require.Equal(t, modalFilter, m.state.modal)

	m.modalForm.inputs[0].SetValue("OPEN")
	m.modalForm.inputs[1].SetValue("2vf")
	m = press(t, m, "enter")

	assert.Equal(t, modalNone, m.state.modal)
	assert.Equal(t, models.CaseFilter{Status: models.CaseOpen, Division: "2VF"}, m.state.filter)
	assert.Empty(t, m.cases)
	assert.Contains(t, m.View(), "filter: status=Open division=2VF")
}

func TestCases_FilterRejectsUnknownStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseOpen))

	m = press(t, m, "f")
	m.modalForm.inputs[0].SetValue("closed")
	m = press(t, m, "enter")

	assert.Equal(t, modalError, m.state.modal)
	assert.Equal(t, app.MsgInvalidStatus, m.state.err)
}

func TestCases_StatusModal(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseOpen), sampleCase(2, models.CaseOpen))

	updated := sampleCase(2, models.CaseInReview)
	a.EXPECT().SetCaseStatus(gomock.Any(), int64(2), models.CaseInReview).Return(updated, nil)
	a.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return([]models.Case{sampleCase(1, models.CaseOpen), updated}, nil)

	m = press(t, m, "down", "s")
	require.Equal(t, modalStatus, m.state.modal)
	assert.Equal(t, 0, m.state.statusIdx)

	m = press(t, m, "down", "enter")

	assert.Equal(t, modalNone, m.state.modal)
	assert.Equal(t, models.CaseInReview, m.cases[1].Status)
}

func TestCases_StatusModalStopsAtLastOption(t *testing.T) {
	m, _ := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseDelivered))

	m = press(t, m, "s")
	assert.Equal(t, 2, m.state.statusIdx)

	m = press(t, m, "down", "down")
	assert.Equal(t, models.CaseDelivered, m.state.statusTarget())
}

func TestCases_FinalizeServerError(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseOpen))

	a.EXPECT().FinalizeCase(gomock.Any(), int64(1), models.FinalizeRequest{
		DeliveryDate: models.NewDate(2024, time.February, 1), ReceivedAmount: 150.5,
	}).Return(models.Case{}, fmt.Errorf("%w: invalid argument", adapter.ErrBadRequest))

	m = press(t, m, "x")
	require.Equal(t, modalFinalize, m.state.modal)
	m.modalForm.inputs[0].SetValue("2024-02-01")
	m.modalForm.inputs[1].SetValue("150,5")
	m = press(t, m, "enter")

	assert.Equal(t, modalError, m.state.modal)
	assert.Contains(t, m.state.err, "invalid argument")
}

func TestCases_PaymentValidation(t *testing.T) {
	m, _ := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseDelivered))

	m = press(t, m, "p")
	m.modalForm.inputs[0].SetValue("-5")
	m = press(t, m, "enter")

	assert.Equal(t, modalError, m.state.modal)
	assert.Equal(t, app.MsgInvalidNumber, m.state.err)
}

func TestCases_DeleteConfirm(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseOpen))

	a.EXPECT().DeleteCase(gomock.Any(), int64(1)).Return(nil)
	a.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return([]models.Case{}, nil)
	a.EXPECT().Divisions(gomock.Any()).Return(models.DivisionsResponse{}, nil)

	m = press(t, m, "d")
	require.Equal(t, modalConfirmDelete, m.state.modal)
	assert.Contains(t, m.View(), "and all its interviews")

	m = press(t, m, "y")
	assert.Equal(t, screenCases, m.state.screen)
	assert.Empty(t, m.cases)
}

func TestCases_DeleteCancelled(t *testing.T) {
	m, _ := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseOpen))

	m = press(t, m, "d", "n")
	assert.Equal(t, modalNone, m.state.modal)
	assert.Len(t, m.cases, 1)
}

func TestCases_NewCase(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m)
	m.divisions = models.DivisionsResponse{Configured: []string{"1VF"}}

	a.EXPECT().CreateCase(gomock.Any(), models.NewCaseRequest{
		Division:        "1VF",
		ProcessNumber:   "0001-11.2024",
		ActionClass:     "Guarda",
		AppointmentDate: models.NewDate(2024, time.January, 1),
		DeadlineDays:    30,
		PredictedAmount: 1200,
	}).Return(sampleCase(1, models.CaseOpen), nil)
	a.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return([]models.Case{sampleCase(1, models.CaseOpen)}, nil)
	a.EXPECT().Divisions(gomock.Any()).Return(m.divisions, nil)

	m = press(t, m, "n")
	require.Equal(t, screenCaseForm, m.state.screen)
	assert.Equal(t, "1VF", m.form.value(0))

	m.form.inputs[1].SetValue("0001-11.2024")
	m.form.inputs[2].SetValue("Guarda")
	m.form.inputs[3].SetValue("2024-01-01")
	m.form.inputs[4].SetValue("0")
	m.form.inputs[6].SetValue("1200")
	m = press(t, m, "enter")

	assert.Equal(t, screenCases, m.state.screen)
	assert.Len(t, m.cases, 1)
}

func TestCases_AdminScreenOnlyForAdmins(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m)

	m = press(t, m, "a")
	assert.Equal(t, screenCases, m.state.screen)

	m.state.session.user.Role = models.RoleAdmin
	a.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{UserID: 2, Email: "bia@example.com", Role: models.RoleNormal}}, nil)

	m = press(t, m, "a")
	assert.Equal(t, screenAdminUsers, m.state.screen)
	assert.Contains(t, m.View(), "bia@example.com")
}

func TestAdmin_ForceReset(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m)
	m.state.session.user.Role = models.RoleAdmin
	m.state.screen = screenAdminUsers
	m.users = []models.User{{UserID: 2, Email: "bia@example.com", Role: models.RoleNormal}}

	a.EXPECT().ForceReset(gomock.Any(), int64(2), models.ForceResetRequest{TemporaryPassword: "temp123"}).Return("TOKEN-2", nil)
	a.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{UserID: 2, Email: "bia@example.com", MustChangePassword: true}}, nil)

	m = press(t, m, "R")
	require.Equal(t, modalForceReset, m.state.modal)
	m.modalForm.inputs[0].SetValue("temp123")
	m = press(t, m, "enter")

	assert.Equal(t, modalToken, m.state.modal)
	assert.Equal(t, "TOKEN-2", m.state.recoveryToken)
	assert.True(t, m.users[0].MustChangePassword)
}

func TestCases_UnauthorizedLoadLogsOut(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m)

	a.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))
	a.EXPECT().SetToken("")

	m = press(t, m, "r")

	assert.Equal(t, screenWelcome, m.state.screen)
	assert.Equal(t, modalError, m.state.modal)
	assert.Equal(t, app.MsgSessionExpired, m.state.err)
}

func TestCases_Logout(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m, sampleCase(1, models.CaseOpen))
	a.EXPECT().SetToken("")

	m = press(t, m, "L")

	assert.Equal(t, screenWelcome, m.state.screen)
	assert.Nil(t, m.cases)
	assert.False(t, m.state.session.loggedIn())
}

// ── Case detail ─────────────────────────────────────────────────────────────

func TestCaseDetail_ToggleAndDeleteInterview(t *testing.T) {
	m, a := newTestModel(t)
	c := sampleCase(1, models.CaseOpen)
	m = loggedIn(m, c)

	pending := models.Interview{ID: 10, CaseID: 1, Date: models.NewDate(2024, time.January, 5), Time: "09:00", IntervieweeName: "Maria", Status: models.InterviewPending}
	done := pending
	done.Status = models.InterviewDone

	gomock.InOrder(
		a.EXPECT().GetCase(gomock.Any(), int64(1)).Return(c, nil),
		a.EXPECT().ListInterviews(gomock.Any(), int64(1)).Return([]models.Interview{pending}, nil),
		a.EXPECT().SetInterviewStatus(gomock.Any(), int64(10), models.InterviewDone).Return(done, nil),
		a.EXPECT().GetCase(gomock.Any(), int64(1)).Return(c, nil),
		a.EXPECT().ListInterviews(gomock.Any(), int64(1)).Return([]models.Interview{done}, nil),
		a.EXPECT().DeleteInterview(gomock.Any(), int64(10)).Return(nil),
		a.EXPECT().GetCase(gomock.Any(), int64(1)).Return(c, nil),
		a.EXPECT().ListInterviews(gomock.Any(), int64(1)).Return(nil, nil),
	)

	m = press(t, m, "enter")
	require.Equal(t, screenCaseDetail, m.state.screen)
	assert.Contains(t, m.View(), "Maria")

	m = press(t, m, "t")
	assert.Equal(t, models.InterviewDone, m.interviews[0].Status)

	m = press(t, m, "d")
	assert.Contains(t, m.View(), "interview with Maria")
	m = press(t, m, "y")
	assert.Empty(t, m.interviews)
}

func TestCaseDetail_AddInterview(t *testing.T) {
	m, a := newTestModel(t)
	c := sampleCase(1, models.CaseOpen)
	m = loggedIn(m, c)
	m.state.screen = screenCaseDetail
	m.current = c

	a.EXPECT().AddInterview(gomock.Any(), int64(1), models.NewInterviewRequest{
		Date: models.NewDate(2024, time.January, 8), Time: "14:30", IntervieweeName: "João",
	}).Return(models.Interview{ID: 11}, nil)
	a.EXPECT().GetCase(gomock.Any(), int64(1)).Return(c, nil)
	a.EXPECT().ListInterviews(gomock.Any(), int64(1)).Return([]models.Interview{{ID: 11}}, nil)

	m = press(t, m, "i")
	require.Equal(t, screenInterviewForm, m.state.screen)

	m.form.inputs[0].SetValue("2024-01-08")
	m.form.inputs[1].SetValue("14:30")
	m.form.inputs[2].SetValue("João")
	m = press(t, m, "enter")

	assert.Equal(t, screenCaseDetail, m.state.screen)
	assert.Len(t, m.interviews, 1)
}

func TestCaseDetail_InterviewTimeValidation(t *testing.T) {
	m, _ := newTestModel(t)
	m = loggedIn(m)
	m.state.screen = screenCaseDetail

	m = press(t, m, "i")
	m.form.inputs[1].SetValue("25:99")
	m.form.inputs[2].SetValue("João")
	m = press(t, m, "enter")

	assert.Equal(t, modalError, m.state.modal)
	assert.Equal(t, app.MsgInvalidTime, m.state.err)
}

// ── Other screens ───────────────────────────────────────────────────────────

func TestFinanceScreen(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m)

	a.EXPECT().FinanceSummary(gomock.Any()).Return(models.FinancialSummary{
		Totals: models.FinancialTotals{Predicted: 2600, Received: 1200, Pending: 1400},
	}, nil)

	m = press(t, m, "m")

	assert.Equal(t, screenFinance, m.state.screen)
	assert.Contains(t, m.View(), "R$ 1400.00")
}

func TestUpcomingScreen_OpensCase(t *testing.T) {
	m, a := newTestModel(t)
	m = loggedIn(m)
	c := sampleCase(4, models.CaseOpen)

	a.EXPECT().UpcomingInterviews(gomock.Any()).Return([]models.UpcomingInterview{{
		Interview:     models.Interview{ID: 1, CaseID: 4, Date: models.NewDate(2024, time.January, 20), Time: "10:00", IntervieweeName: "Maria"},
		ProcessNumber: c.ProcessNumber,
		Division:      c.Division,
	}}, nil)
	a.EXPECT().GetCase(gomock.Any(), int64(4)).Return(c, nil)
	a.EXPECT().ListInterviews(gomock.Any(), int64(4)).Return(nil, nil)

	m = press(t, m, "u")
	assert.Contains(t, m.View(), "Maria")

	m = press(t, m, "enter")
	assert.Equal(t, screenCaseDetail, m.state.screen)
	assert.Equal(t, c.ProcessNumber, m.current.ProcessNumber)
}

func TestCtrlCQuitsFromAnyModal(t *testing.T) {
	m, _ := newTestModel(t)
	m.state.showError("boom")

	next, cmd := m.Update(keyPress("ctrl+c"))
	require.NotNil(t, cmd)
	assert.True(t, next.(appModel).quitByUser)
}
