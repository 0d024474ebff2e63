// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/MKhiriev/go-pericias/models"
)

const tableHeight = 12

var welcomeItems = []string{"Log in", "Register", "Reset password with recovery token"}

func renderWelcome(s viewState, buildInfo models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder
	for i, item := range welcomeItems {
		b.WriteString(cursor(i == s.selected))
		b.WriteString(item)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("client " + buildInfo.String()))
	if serverVersion != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("server " + serverVersion))
	}

	return renderPage("Pericias", b.String(), "↑/↓ choose  enter open  q quit")
}

func renderForm(s viewState, form formModel, help string) string {
	body := form.View()
	if s.submitting {
		body += "\nsending..."
	}
	return renderPage(form.title, body, help)
}

func renderCases(s viewState, cases []models.Case) string {
	var b strings.Builder

	if f := filterText(s.filter); f != "" {
		b.WriteString(helpStyle.Render("filter: " + f))
		b.WriteString("\n\n")
	}

	switch {
	case s.loading:
		b.WriteString("loading...\n")
	case len(cases) == 0:
		b.WriteString("no cases\n")
	default:
		b.WriteString(titleStyle.Render(caseRow("", "Division", "Process", "Status", "Deadline")))
		b.WriteString("\n")
		for i, c := range cases {
			row := caseRow(cursor(i == s.selected), c.Division, c.ProcessNumber, c.Status.Label(), deadlineText(c.Deadline))
			b.WriteString(tierStyle(c.Deadline).Render(row))
			b.WriteString("\n")
		}
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(s.status)
		b.WriteString("\n")
	}

	help := "enter open  n new  f filter  r refresh  d delete  s status  x finalize  p payment\nm finance  u upcoming  P password  L logout  q quit"
	if s.isAdmin() {
		help += "  a users"
	}

	title := "Cases"
	if s.session.loggedIn() {
		title += " · " + s.session.user.FullName()
	}
	return renderPage(title, b.String(), help)
}

func caseRow(cur, division, process, status, deadline string) string {
	return cur + pad(division, 8) + " " + pad(process, 26) + " " + pad(status, 10) + " " + deadline
}

func filterText(f models.CaseFilter) string {
	var parts []string
	if f.Status != "" {
		parts = append(parts, "status="+f.Status.Label())
	}
	if f.Division != "" {
		parts = append(parts, "division="+f.Division)
	}
	if f.ProcessNumber != "" {
		parts = append(parts, "process="+f.ProcessNumber)
	}
	return strings.Join(parts, " ")
}

func renderCaseDetail(s viewState, c models.Case, interviews []models.Interview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Process:      %s\n", c.ProcessNumber)
	fmt.Fprintf(&b, "Division:     %s\n", c.Division)
	fmt.Fprintf(&b, "Action class: %s\n", c.ActionClass)
	fmt.Fprintf(&b, "Status:       %s\n", c.Status.Label())
	fmt.Fprintf(&b, "Appointment:  %s\n", c.AppointmentDate)
	b.WriteString("Deadline:     ")
	b.WriteString(tierStyle(c.Deadline).Render(deadlineText(c.Deadline)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Delivered:    %s\n", dateOrDash(c.DeliveryDate))
	fmt.Fprintf(&b, "Predicted:    %s\n", money(c.PredictedAmount))
	fmt.Fprintf(&b, "Received:     %s\n", money(c.ReceivedAmount))
	if c.Notes != "" {
		fmt.Fprintf(&b, "Notes:        %s\n", c.Notes)
	}

	fmt.Fprintf(&b, "\nInterviews (%d planned)\n", c.InterviewCount)
	if len(interviews) == 0 {
		b.WriteString("  none\n")
	}
	for i, iv := range interviews {
		fmt.Fprintf(&b, "%s%s %s  %s  [%s]\n", cursor(i == s.selected), iv.Date, iv.Time, iv.IntervieweeName, iv.Status.Label())
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(s.status)
		b.WriteString("\n")
	}

	return renderPage("Case "+c.ProcessNumber, b.String(),
		"i add interview  t toggle interview  d delete interview  s status  x finalize  p payment  esc back")
}

func renderFinance(s viewState, summary models.FinancialSummary) string {
	if s.loading {
		return renderPage("Finance", "loading...", "esc back")
	}

	var b strings.Builder
	t := summary.Totals
	fmt.Fprintf(&b, "Predicted: %s\nReceived:  %s\nPending:   %s\n", money(t.Predicted), money(t.Received), money(t.Pending))

	b.WriteString("\nBy month\n")
	for _, mt := range summary.Monthly {
		fmt.Fprintf(&b, "  %s  %14s %14s %14s\n", mt.Month, money(mt.Predicted), money(mt.Received), money(mt.Pending))
	}

	b.WriteString("\nBy status\n")
	for _, sc := range summary.Statuses {
		fmt.Fprintf(&b, "  %-10s %d\n", sc.Status.Label(), sc.Count)
	}

	b.WriteString("\nAwaiting payment\n")
	if len(summary.Pending) == 0 {
		b.WriteString("  none\n")
	}
	for _, p := range summary.Pending {
		fmt.Fprintf(&b, "  %s  %-24s %s of %s (%.0f%%)\n",
			p.AppointmentDate, fitText(p.ProcessNumber, 24), money(p.Received), money(p.Predicted), p.CompletionPercent)
	}

	return renderPage("Finance", b.String(), "r refresh  esc back")
}

func renderUpcoming(s viewState, upcoming []models.UpcomingInterview) string {
	if s.loading {
		return renderPage("Upcoming interviews", "loading...", "esc back")
	}

	rows := make([]table.Row, 0, len(upcoming))
	for _, iv := range upcoming {
		rows = append(rows, table.Row{iv.Date.String(), iv.Time, iv.IntervieweeName, iv.ProcessNumber, iv.Division})
	}

	t := newTable([]table.Column{
		{Title: "Date", Width: 10},
		{Title: "Time", Width: 5},
		{Title: "Interviewee", Width: 20},
		{Title: "Process", Width: 24},
		{Title: "Division", Width: 8},
	}, rows, s.selected)

	return renderPage("Upcoming interviews", t.View(), "↑/↓ move  enter open case  r refresh  esc back")
}

func renderUsers(s viewState, users []models.User) string {
	if s.loading {
		return renderPage("Users", "loading...", "esc back")
	}

	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		mustChange := ""
		if u.MustChangePassword {
			mustChange = "yes"
		}
		rows = append(rows, table.Row{fmt.Sprint(u.UserID), u.FullName(), u.Email, string(u.Role), mustChange})
	}

	t := newTable([]table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 20},
		{Title: "Email", Width: 26},
		{Title: "Role", Width: 7},
		{Title: "Reset", Width: 5},
	}, rows, s.selected)

	return renderPage("Users", t.View(), "↑/↓ move  R force password reset  r refresh  esc back")
}

func newTable(columns []table.Column, rows []table.Row, selected int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	t.SetCursor(selected)
	return t
}

func renderStatusModal(s viewState) string {
	var b strings.Builder
	b.WriteString("Change status\n\n")
	for i, st := range selectableStatuses {
		b.WriteString(cursor(i == s.statusIdx))
		b.WriteString(st.Label())
		b.WriteString("\n")
	}
	b.WriteString("\n↑/↓ choose  enter apply  esc cancel")
	return overlayBoxStyle.Render(b.String())
}

func renderFormModal(form formModel, help string) string {
	return overlayBoxStyle.Render(form.title + "\n\n" + form.View() + "\n" + help)
}

func renderConfirmModal(s viewState, c models.Case, iv models.Interview) string {
	what := "case " + c.ProcessNumber + " and all its interviews"
	if s.deleting == deleteInterview {
		what = "interview with " + iv.IntervieweeName + " on " + iv.Date.String()
	}
	return overlayBoxStyle.Render("Delete " + what + "?\n\ny yes    n no")
}

func renderTokenModal(s viewState) string {
	content := "Recovery token\n\n" + titleStyle.Render(s.recoveryToken) +
		"\n\nKeep it safe: it is shown only once and resets your password.\n"
	if s.status != "" {
		content += "\n" + s.status + "\n"
	}
	content += "\nc copy  enter continue"
	return overlayBoxStyle.Render(content)
}

func renderErrorModal(s viewState) string {
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + s.err + "\n\nenter / esc close")
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}
