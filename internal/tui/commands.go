// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pericias/models"
)

// statusTTL is how long a status line stays visible.
var statusTTL = 2 * time.Second

func (m appModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		user, err := m.adapter.Login(m.ctx, req)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.adapter.Register(m.ctx, req)
		return authDoneMsg{user: resp.User, recoveryToken: resp.RecoveryToken, err: err}
	}
}

func (m appModel) cmdResetPassword(req models.ResetPasswordRequest) tea.Cmd {
	return func() tea.Msg {
		token, err := m.adapter.ResetPassword(m.ctx, req)
		return tokenIssuedMsg{token: token, err: err}
	}
}

func (m appModel) cmdChangePassword(req models.ChangePasswordRequest) tea.Cmd {
	return func() tea.Msg {
		return passwordChangedMsg{err: m.adapter.ChangePassword(m.ctx, req)}
	}
}

func (m appModel) cmdForceReset(userID int64, req models.ForceResetRequest) tea.Cmd {
	return func() tea.Msg {
		token, err := m.adapter.ForceReset(m.ctx, userID, req)
		return tokenIssuedMsg{token: token, err: err}
	}
}

func (m appModel) cmdLoadCases(filter models.CaseFilter) tea.Cmd {
	return func() tea.Msg {
		cases, err := m.adapter.ListCases(m.ctx, filter)
		return casesLoadedMsg{cases: cases, err: err}
	}
}

func (m appModel) cmdLoadDivisions() tea.Cmd {
	return func() tea.Msg {
		divisions, err := m.adapter.Divisions(m.ctx)
		return divisionsLoadedMsg{divisions: divisions, err: err}
	}
}

func (m appModel) cmdLoadCase(caseID int64) tea.Cmd {
	return func() tea.Msg {
		c, err := m.adapter.GetCase(m.ctx, caseID)
		if err != nil {
			return caseLoadedMsg{err: err}
		}
		interviews, err := m.adapter.ListInterviews(m.ctx, caseID)
		return caseLoadedMsg{c: c, interviews: interviews, err: err}
	}
}

func (m appModel) cmdCreateCase(req models.NewCaseRequest) tea.Cmd {
	return func() tea.Msg {
		c, err := m.adapter.CreateCase(m.ctx, req)
		return caseSavedMsg{c: c, err: err}
	}
}

func (m appModel) cmdSetCaseStatus(caseID int64, status models.CaseStatus) tea.Cmd {
	return func() tea.Msg {
		c, err := m.adapter.SetCaseStatus(m.ctx, caseID, status)
		return caseSavedMsg{c: c, err: err}
	}
}

func (m appModel) cmdFinalize(caseID int64, req models.FinalizeRequest) tea.Cmd {
	return func() tea.Msg {
		c, err := m.adapter.FinalizeCase(m.ctx, caseID, req)
		return caseSavedMsg{c: c, err: err}
	}
}

func (m appModel) cmdPayment(caseID int64, req models.PaymentRequest) tea.Cmd {
	return func() tea.Msg {
		c, err := m.adapter.RegisterPayment(m.ctx, caseID, req)
		return caseSavedMsg{c: c, err: err}
	}
}

func (m appModel) cmdDeleteCase(caseID int64) tea.Cmd {
	return func() tea.Msg {
		return caseDeletedMsg{err: m.adapter.DeleteCase(m.ctx, caseID)}
	}
}

func (m appModel) cmdAddInterview(caseID int64, req models.NewInterviewRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := m.adapter.AddInterview(m.ctx, caseID, req)
		return interviewSavedMsg{err: err}
	}
}

func (m appModel) cmdToggleInterview(iv models.Interview) tea.Cmd {
	return func() tea.Msg {
		_, err := m.adapter.SetInterviewStatus(m.ctx, iv.ID, iv.Status.Toggled())
		return interviewSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteInterview(interviewID int64) tea.Cmd {
	return func() tea.Msg {
		return interviewSavedMsg{err: m.adapter.DeleteInterview(m.ctx, interviewID)}
	}
}

func (m appModel) cmdLoadFinance() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.adapter.FinanceSummary(m.ctx)
		return financeLoadedMsg{summary: summary, err: err}
	}
}

func (m appModel) cmdLoadUpcoming() tea.Cmd {
	return func() tea.Msg {
		interviews, err := m.adapter.UpcomingInterviews(m.ctx)
		return upcomingLoadedMsg{interviews: interviews, err: err}
	}
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.adapter.ListUsers(m.ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
