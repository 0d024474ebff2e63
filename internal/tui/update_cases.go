// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pericias/internal/app"
	"github.com/MKhiriev/go-pericias/models"
)

func (m appModel) updateCases(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.state.moveSelection(-1, len(m.cases))
	case key.Matches(keyMsg, keys.down):
		m.state.moveSelection(1, len(m.cases))
	case key.Matches(keyMsg, keys.enter):
		c, ok := m.selectedCase()
		if !ok {
			return m, nil
		}
		m.current = c
		return m.enter(screenCaseDetail)
	case key.Matches(keyMsg, keys.newItem):
		return m.enter(screenCaseForm)
	case key.Matches(keyMsg, keys.refresh):
		m.state.loading = true
		return m, m.cmdLoadCases(m.state.filter)
	case key.Matches(keyMsg, keys.filter):
		m.modalForm = newFilterForm(m.state.filter)
		m.state.modal = modalFilter
	case key.Matches(keyMsg, keys.delete):
		if c, ok := m.selectedCase(); ok {
			m.current = c
			m.state.deleting = deleteCase
			m.state.modal = modalConfirmDelete
		}
	case key.Matches(keyMsg, keys.status), key.Matches(keyMsg, keys.finalize), key.Matches(keyMsg, keys.payment):
		c, ok := m.selectedCase()
		if !ok {
			return m, nil
		}
		m.current = c
		return m.openCaseModal(keyMsg)
	case key.Matches(keyMsg, keys.finance):
		return m.enter(screenFinance)
	case key.Matches(keyMsg, keys.upcoming):
		return m.enter(screenUpcoming)
	case key.Matches(keyMsg, keys.admin):
		if m.state.isAdmin() {
			return m.enter(screenAdminUsers)
		}
	case key.Matches(keyMsg, keys.password):
		return m.enter(screenChangePassword)
	case key.Matches(keyMsg, keys.logout):
		return m.logout()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

// openCaseModal opens the status, finalize or payment modal for m.current.
func (m appModel) openCaseModal(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.status):
		m.state.statusIdx = max(slices.Index(selectableStatuses, m.current.Status), 0)
		m.state.modal = modalStatus
	case key.Matches(keyMsg, keys.finalize):
		m.modalForm = newFinalizeForm(today())
		m.state.modal = modalFinalize
	case key.Matches(keyMsg, keys.payment):
		m.modalForm = newPaymentForm(m.current.ReceivedAmount)
		m.state.modal = modalPayment
	}
	return m, nil
}

func (m appModel) updateCaseDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.enter(screenCases)
	case key.Matches(keyMsg, keys.up):
		m.state.moveSelection(-1, len(m.interviews))
	case key.Matches(keyMsg, keys.down):
		m.state.moveSelection(1, len(m.interviews))
	case key.Matches(keyMsg, keys.interview):
		return m.enter(screenInterviewForm)
	case key.Matches(keyMsg, keys.toggle):
		if len(m.interviews) == 0 {
			return m, nil
		}
		return m, m.cmdToggleInterview(m.selectedInterview())
	case key.Matches(keyMsg, keys.delete):
		if len(m.interviews) > 0 {
			m.state.deleting = deleteInterview
			m.state.modal = modalConfirmDelete
		}
	case key.Matches(keyMsg, keys.status), key.Matches(keyMsg, keys.finalize), key.Matches(keyMsg, keys.payment):
		return m.openCaseModal(keyMsg)
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateCaseForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, action, cmd := handleForm(m.form, msg)
	m.form = form

	switch action {
	case formCancel:
		if m.state.screen == screenInterviewForm {
			m.state.open(screenCaseDetail)
			return m, nil
		}
		return m.enter(screenCases)
	case formSubmit:
		if m.state.submitting {
			return m, nil
		}
		if m.state.screen == screenInterviewForm {
			req, err := newInterviewRequest(m.form)
			if err != nil {
				m.state.showError(err.Error())
				return m, nil
			}
			m.state.submitting = true
			return m, m.cmdAddInterview(m.current.ID, req)
		}

		req, err := newCaseRequest(m.form)
		if err != nil {
			m.state.showError(err.Error())
			return m, nil
		}
		m.state.submitting = true
		return m, m.cmdCreateCase(req)
	}
	return m, cmd
}

func (m appModel) onCaseSaved(msg caseSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state.showError(humanizeError(msg.err))
		return m, nil
	}

	m.state.submitting = false
	m.state.closeModal()
	m.state.status = app.MsgSaved

	switch m.state.screen {
	case screenCaseForm:
		return m.enter(screenCases)
	case screenCaseDetail:
		m.current = msg.c
		return m, cmdClearStatus()
	default:
		m.state.loading = true
		return m, tea.Batch(m.cmdLoadCases(m.state.filter), cmdClearStatus())
	}
}

func (m appModel) updateFinance(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.enter(screenCases)
	case key.Matches(keyMsg, keys.refresh):
		return m.enter(screenFinance)
	}
	return m, nil
}

func (m appModel) updateUpcoming(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.enter(screenCases)
	case key.Matches(keyMsg, keys.refresh):
		return m.enter(screenUpcoming)
	case key.Matches(keyMsg, keys.up):
		m.state.moveSelection(-1, len(m.upcoming))
	case key.Matches(keyMsg, keys.down):
		m.state.moveSelection(1, len(m.upcoming))
	case key.Matches(keyMsg, keys.enter):
		if m.state.selected < len(m.upcoming) {
			m.current = models.Case{ID: m.upcoming[m.state.selected].CaseID}
			return m.enter(screenCaseDetail)
		}
	}
	return m, nil
}

func (m appModel) updateUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.enter(screenCases)
	case key.Matches(keyMsg, keys.refresh):
		return m.enter(screenAdminUsers)
	case key.Matches(keyMsg, keys.up):
		m.state.moveSelection(-1, len(m.users))
	case key.Matches(keyMsg, keys.down):
		m.state.moveSelection(1, len(m.users))
	case key.Matches(keyMsg, keys.reset):
		if m.state.selected < len(m.users) {
			m.modalForm = newForceResetForm(m.users[m.state.selected])
			m.state.modal = modalForceReset
		}
	}
	return m, nil
}
