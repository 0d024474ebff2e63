// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pericias/models"

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenReset
	screenChangePassword
	screenCases
	screenCaseDetail
	screenCaseForm
	screenInterviewForm
	screenFinance
	screenUpcoming
	screenAdminUsers
)

type modal int

const (
	modalNone modal = iota
	modalFilter
	modalStatus
	modalFinalize
	modalPayment
	modalConfirmDelete
	modalForceReset
	modalToken
	modalError
)

// deleteTarget tells the confirm modal what is about to be removed.
type deleteTarget int

const (
	deleteCase deleteTarget = iota
	deleteInterview
)

type session struct {
	user models.User
}

func (s session) loggedIn() bool {
	return s.user.UserID != 0
}

// viewState is everything the renderers need to know about navigation. The
// root model owns the only copy and hands it to every render function.
type viewState struct {
	screen   screen
	modal    modal
	selected int

	filter models.CaseFilter
	status string
	err    string

	// recoveryToken is shown once in the token modal and cleared when it
	// closes.
	recoveryToken string

	deleting deleteTarget
	// statusIdx is the cursor inside the status modal.
	statusIdx int

	loading    bool
	submitting bool

	session session
}

func (s viewState) isAdmin() bool {
	return s.session.user.IsAdmin()
}

// open switches to scr and resets the per-screen cursor.
func (s *viewState) open(scr screen) {
	s.screen = scr
	s.modal = modalNone
	s.selected = 0
	s.err = ""
}

func (s *viewState) showError(message string) {
	s.modal = modalError
	s.err = message
	s.submitting = false
}

func (s *viewState) closeModal() {
	s.modal = modalNone
	s.err = ""
}

// moveSelection keeps the cursor inside [0, n).
func (s *viewState) moveSelection(delta, n int) {
	if n <= 0 {
		s.selected = 0
		return
	}
	s.selected += delta
	if s.selected < 0 {
		s.selected = 0
	}
	if s.selected >= n {
		s.selected = n - 1
	}
}

// selectableStatuses are the targets of a manual status change. Received is
// reached through finalize or a payment only.
var selectableStatuses = []models.CaseStatus{models.CaseOpen, models.CaseInReview, models.CaseDelivered}

// statusTarget reports which status the modal cursor points at.
func (s viewState) statusTarget() models.CaseStatus {
	return selectableStatuses[min(max(s.statusIdx, 0), len(selectableStatuses)-1)]
}
