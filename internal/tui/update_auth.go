// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pericias/models"
)

type formAction int

const (
	formEditing formAction = iota
	formSubmit
	formCancel
)

// handleForm moves focus and feeds text input. It reports whether the form
// was submitted or cancelled.
func handleForm(f formModel, msg tea.Msg) (formModel, formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return f, formCancel, nil
		case key.Matches(keyMsg, keys.enter):
			return f, formSubmit, nil
		case key.Matches(keyMsg, keys.tab):
			return f.focusNext(), formEditing, nil
		case key.Matches(keyMsg, keys.backtab):
			return f.focusPrev(), formEditing, nil
		}
	}

	f, cmd := f.update(msg)
	return f, formEditing, cmd
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.state.moveSelection(-1, len(welcomeItems))
	case key.Matches(keyMsg, keys.down):
		m.state.moveSelection(1, len(welcomeItems))
	case key.Matches(keyMsg, keys.enter):
		switch m.state.selected {
		case 0:
			return m.enter(screenLogin)
		case 1:
			return m.enter(screenRegister)
		default:
			return m.enter(screenReset)
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, action, cmd := handleForm(m.form, msg)
	m.form = form

	switch action {
	case formCancel:
		if m.state.screen == screenChangePassword {
			if m.state.session.user.MustChangePassword {
				return m.logout()
			}
			return m.enter(screenCases)
		}
		return m.enter(screenWelcome)
	case formSubmit:
		if m.state.submitting {
			return m, nil
		}
		return m.submitAuthForm()
	}
	return m, cmd
}

func (m appModel) submitAuthForm() (tea.Model, tea.Cmd) {
	var (
		cmd tea.Cmd
		err error
	)

	switch m.state.screen {
	case screenLogin:
		var req models.LoginRequest
		if req, err = loginRequest(m.form); err == nil {
			cmd = m.cmdLogin(req)
		}
	case screenRegister:
		var req models.RegisterRequest
		if req, err = registerRequest(m.form); err == nil {
			cmd = m.cmdRegister(req)
		}
	case screenReset:
		var req models.ResetPasswordRequest
		if req, err = resetRequest(m.form); err == nil {
			cmd = m.cmdResetPassword(req)
		}
	case screenChangePassword:
		var req models.ChangePasswordRequest
		if req, err = changePasswordRequest(m.form); err == nil {
			cmd = m.cmdChangePassword(req)
		}
	}

	if err != nil {
		m.state.showError(err.Error())
		return m, nil
	}

	m.state.submitting = true
	return m, cmd
}

func (m appModel) onAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.state.screen == screenLogin {
			m.state.showError(humanizeLoginError(msg.err))
		} else {
			m.state.showError(humanizeError(msg.err))
		}
		return m, nil
	}

	m.state.submitting = false
	m.state.session = session{user: msg.user}
	m.logger.Info().Int64("user_id", msg.user.UserID).Msg("logged in")

	next := screenCases
	if msg.user.MustChangePassword {
		next = screenChangePassword
	}

	if msg.recoveryToken != "" {
		nm, cmd := m.enter(next)
		model := nm.(appModel)
		model.state.recoveryToken = msg.recoveryToken
		model.state.modal = modalToken
		return model, cmd
	}
	return m.enter(next)
}

func (m appModel) onTokenIssued(msg tokenIssuedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state.showError(humanizeError(msg.err))
		return m, nil
	}

	m.state.submitting = false

	// the user list shows the must-change flag of the reset account
	var cmd tea.Cmd
	if m.state.screen == screenAdminUsers {
		m.state.loading = true
		cmd = m.cmdLoadUsers()
	} else {
		var nm tea.Model
		nm, cmd = m.enter(screenLogin)
		m = nm.(appModel)
	}

	m.state.recoveryToken = msg.token
	m.state.modal = modalToken
	return m, cmd
}
