// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pericias/models"

type authDoneMsg struct {
	user          models.User
	recoveryToken string
	err           error
}

type tokenIssuedMsg struct {
	token string
	err   error
}

type passwordChangedMsg struct {
	err error
}

type casesLoadedMsg struct {
	cases []models.Case
	err   error
}

type divisionsLoadedMsg struct {
	divisions models.DivisionsResponse
	err       error
}

type caseLoadedMsg struct {
	c          models.Case
	interviews []models.Interview
	err        error
}

type caseSavedMsg struct {
	c   models.Case
	err error
}

type caseDeletedMsg struct {
	err error
}

type interviewSavedMsg struct {
	err error
}

type financeLoadedMsg struct {
	summary models.FinancialSummary
	err     error
}

type upcomingLoadedMsg struct {
	interviews []models.UpcomingInterview
	err        error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
