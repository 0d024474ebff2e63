// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pericias/internal/adapter"
	"github.com/MKhiriev/go-pericias/internal/app"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/models"
)

type appModel struct {
	ctx           context.Context
	adapter       adapter.ServerAdapter
	logger        *logger.Logger
	buildInfo     models.AppBuildInfo
	serverVersion string

	state viewState

	// form backs the form screens, modalForm the form modals.
	form      formModel
	modalForm formModel

	cases      []models.Case
	divisions  models.DivisionsResponse
	current    models.Case
	interviews []models.Interview
	summary    models.FinancialSummary
	upcoming   []models.UpcomingInterview
	users      []models.User

	quitByUser bool
}

func newAppModel(ctx context.Context, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, serverVersion string, logger *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		adapter:       serverAdapter,
		logger:        logger,
		buildInfo:     buildInfo,
		serverVersion: serverVersion,
		state:         viewState{screen: screenWelcome},
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.state.modal != modalNone {
			return m.updateModal(msg)
		}
	case authDoneMsg:
		return m.onAuthDone(msg)
	case tokenIssuedMsg:
		return m.onTokenIssued(msg)
	case passwordChangedMsg:
		if msg.err != nil {
			m.state.showError(humanizeError(msg.err))
			return m, nil
		}
		m.state.submitting = false
		m.state.session.user.MustChangePassword = false
		m.state.status = app.MsgSaved
		return m.enter(screenCases)
	case casesLoadedMsg:
		m.state.loading = false
		if msg.err != nil {
			return m.onLoadError(msg.err)
		}
		m.cases = msg.cases
		m.state.moveSelection(0, len(m.cases))
		return m, nil
	case divisionsLoadedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("divisions not loaded")
			return m, nil
		}
		m.divisions = msg.divisions
		return m, nil
	case caseLoadedMsg:
		m.state.loading = false
		if msg.err != nil {
			return m.onLoadError(msg.err)
		}
		m.current = msg.c
		m.interviews = msg.interviews
		m.state.moveSelection(0, len(m.interviews))
		return m, nil
	case caseSavedMsg:
		return m.onCaseSaved(msg)
	case caseDeletedMsg:
		if msg.err != nil {
			m.state.showError(humanizeError(msg.err))
			return m, nil
		}
		m.state.status = app.MsgSaved
		return m.enter(screenCases)
	case interviewSavedMsg:
		if msg.err != nil {
			m.state.showError(humanizeError(msg.err))
			return m, nil
		}
		m.state.submitting = false
		m.state.closeModal()
		if m.state.screen == screenInterviewForm {
			m.state.open(screenCaseDetail)
		}
		m.state.loading = true
		return m, m.cmdLoadCase(m.current.ID)
	case financeLoadedMsg:
		m.state.loading = false
		if msg.err != nil {
			return m.onLoadError(msg.err)
		}
		m.summary = msg.summary
		return m, nil
	case upcomingLoadedMsg:
		m.state.loading = false
		if msg.err != nil {
			return m.onLoadError(msg.err)
		}
		m.upcoming = msg.interviews
		m.state.moveSelection(0, len(m.upcoming))
		return m, nil
	case usersLoadedMsg:
		m.state.loading = false
		if msg.err != nil {
			return m.onLoadError(msg.err)
		}
		m.users = msg.users
		m.state.moveSelection(0, len(m.users))
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.state.status = msg.err.Error()
		} else {
			m.state.status = app.MsgTokenCopied
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.state.status = ""
		return m, nil
	}

	switch m.state.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin, screenRegister, screenReset, screenChangePassword:
		return m.updateAuthForm(msg)
	case screenCases:
		return m.updateCases(msg)
	case screenCaseDetail:
		return m.updateCaseDetail(msg)
	case screenCaseForm, screenInterviewForm:
		return m.updateCaseForms(msg)
	case screenFinance:
		return m.updateFinance(msg)
	case screenUpcoming:
		return m.updateUpcoming(msg)
	case screenAdminUsers:
		return m.updateUsers(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	s := m.state

	var body string
	switch s.screen {
	case screenWelcome:
		body = renderWelcome(s, m.buildInfo, m.serverVersion)
	case screenLogin, screenRegister, screenReset, screenChangePassword:
		body = renderForm(s, m.form, "tab next field  enter submit  esc back")
	case screenCaseForm, screenInterviewForm:
		body = renderForm(s, m.form, "tab next field  enter save  esc cancel")
	case screenCases:
		body = renderCases(s, m.cases)
	case screenCaseDetail:
		body = renderCaseDetail(s, m.current, m.interviews)
	case screenFinance:
		body = renderFinance(s, m.summary)
	case screenUpcoming:
		body = renderUpcoming(s, m.upcoming)
	case screenAdminUsers:
		body = renderUsers(s, m.users)
	}

	switch s.modal {
	case modalStatus:
		body += "\n\n" + renderStatusModal(s)
	case modalFilter, modalFinalize, modalPayment, modalForceReset:
		body += "\n\n" + renderFormModal(m.modalForm, "tab next field  enter apply  esc cancel")
	case modalConfirmDelete:
		body += "\n\n" + renderConfirmModal(s, m.current, m.selectedInterview())
	case modalToken:
		body += "\n\n" + renderTokenModal(s)
	case modalError:
		body += "\n\n" + renderErrorModal(s)
	}

	return appStyle.Render(body)
}

// enter opens scr, prepares its form and returns the command that loads its
// data.
func (m appModel) enter(scr screen) (tea.Model, tea.Cmd) {
	status := m.state.status
	m.state.open(scr)
	m.state.status = status
	m.state.submitting = false
	m.state.loading = false

	switch scr {
	case screenLogin:
		m.form = newLoginForm()
	case screenRegister:
		m.form = newRegisterForm()
	case screenReset:
		m.form = newResetForm()
	case screenChangePassword:
		m.form = newChangePasswordForm()
	case screenCaseForm:
		m.form = newCaseForm(m.defaultDivision(), today())
	case screenInterviewForm:
		m.form = newInterviewForm(today())
	case screenCases:
		m.state.loading = true
		return m, tea.Batch(m.cmdLoadCases(m.state.filter), m.cmdLoadDivisions())
	case screenCaseDetail:
		m.state.loading = true
		return m, m.cmdLoadCase(m.current.ID)
	case screenFinance:
		m.state.loading = true
		return m, m.cmdLoadFinance()
	case screenUpcoming:
		m.state.loading = true
		return m, m.cmdLoadUpcoming()
	case screenAdminUsers:
		m.state.loading = true
		return m, m.cmdLoadUsers()
	}

	return m, nil
}

// onLoadError shows err. A rejected session sends the user back to the
// welcome screen.
func (m appModel) onLoadError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrUnauthorized) {
		next, cmd := m.logout()
		nm := next.(appModel)
		nm.state.showError(humanizeError(err))
		return nm, cmd
	}
	m.state.showError(humanizeError(err))
	return m, nil
}

func (m appModel) logout() (tea.Model, tea.Cmd) {
	m.adapter.SetToken("")
	m.state = viewState{screen: screenWelcome}
	m.cases, m.interviews, m.users, m.upcoming = nil, nil, nil, nil
	m.current = models.Case{}
	m.summary = models.FinancialSummary{}
	return m, nil
}

func (m appModel) defaultDivision() string {
	if len(m.divisions.Configured) > 0 {
		return m.divisions.Configured[0]
	}
	return ""
}

func (m appModel) selectedCase() (models.Case, bool) {
	if m.state.selected < 0 || m.state.selected >= len(m.cases) {
		return models.Case{}, false
	}
	return m.cases[m.state.selected], true
}

func (m appModel) selectedInterview() models.Interview {
	if m.state.selected < 0 || m.state.selected >= len(m.interviews) {
		return models.Interview{}
	}
	return m.interviews[m.state.selected]
}
