// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.modal {
	case modalError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.state.closeModal()
		}
		return m, nil
	case modalToken:
		switch {
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.state.recoveryToken)
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			m.state.recoveryToken = ""
			m.state.status = ""
			m.state.closeModal()
		}
		return m, nil
	case modalConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			m.state.closeModal()
			if m.state.deleting == deleteInterview {
				return m, m.cmdDeleteInterview(m.selectedInterview().ID)
			}
			return m, m.cmdDeleteCase(m.current.ID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.state.closeModal()
		}
		return m, nil
	case modalStatus:
		switch {
		case key.Matches(msg, keys.up):
			m.state.statusIdx = max(m.state.statusIdx-1, 0)
		case key.Matches(msg, keys.down):
			m.state.statusIdx = min(m.state.statusIdx+1, len(selectableStatuses)-1)
		case key.Matches(msg, keys.enter):
			m.state.submitting = true
			return m, m.cmdSetCaseStatus(m.current.ID, m.state.statusTarget())
		case key.Matches(msg, keys.esc):
			m.state.closeModal()
		}
		return m, nil
	}

	return m.updateModalForm(msg)
}

func (m appModel) updateModalForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, action, cmd := handleForm(m.modalForm, msg)
	m.modalForm = form

	switch action {
	case formCancel:
		m.state.closeModal()
		return m, nil
	case formEditing:
		return m, cmd
	}

	if m.state.submitting {
		return m, nil
	}

	switch m.state.modal {
	case modalFilter:
		filter := caseFilter(m.modalForm)
		if filter.Status != "" && !filter.Status.Valid() {
			return m.modalError(errInvalidStatus)
		}
		m.state.filter = filter
		m.state.closeModal()
		m.state.selected = 0
		m.state.loading = true
		return m, m.cmdLoadCases(filter)
	case modalFinalize:
		req, err := finalizeRequest(m.modalForm)
		if err != nil {
			return m.modalError(err)
		}
		m.state.submitting = true
		return m, m.cmdFinalize(m.current.ID, req)
	case modalPayment:
		req, err := paymentRequest(m.modalForm)
		if err != nil {
			return m.modalError(err)
		}
		m.state.submitting = true
		return m, m.cmdPayment(m.current.ID, req)
	case modalForceReset:
		req, err := forceResetRequest(m.modalForm)
		if err != nil {
			return m.modalError(err)
		}
		if m.state.selected >= len(m.users) {
			m.state.closeModal()
			return m, nil
		}
		m.state.submitting = true
		return m, m.cmdForceReset(m.users[m.state.selected].UserID, req)
	}

	return m, nil
}

// modalError replaces the open form modal with the error overlay.
func (m appModel) modalError(err error) (tea.Model, tea.Cmd) {
	m.state.showError(err.Error())
	return m, nil
}
