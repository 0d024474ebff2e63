// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pericias/internal/app"
	"github.com/MKhiriev/go-pericias/models"
)

const (
	minPasswordLength   = 6
	defaultDeadlineDays = 30
	timeLayout          = "15:04"
)

var (
	errRequiredFields     = errors.New(app.MsgRequiredFields)
	errPasswordTooShort   = errors.New(app.MsgPasswordTooShort)
	errPasswordsDontMatch = errors.New(app.MsgPasswordsDoNotMatch)
	errInvalidDate        = errors.New(app.MsgInvalidDate)
	errInvalidTime        = errors.New(app.MsgInvalidTime)
	errInvalidNumber      = errors.New(app.MsgInvalidNumber)
	errInvalidStatus      = errors.New(app.MsgInvalidStatus)
)

// today is the local calendar date used to prefill date fields.
var today = func() models.Date {
	return models.DateOf(time.Now())
}

func newLoginForm() formModel {
	return newForm("Log in",
		formField{label: "Email"},
		formField{label: "Password", secret: true},
	)
}

func newRegisterForm() formModel {
	return newForm("Register",
		formField{label: "First name"},
		formField{label: "Last name"},
		formField{label: "Email"},
		formField{label: "Password", secret: true},
		formField{label: "Repeat password", secret: true},
	)
}

func newResetForm() formModel {
	return newForm("Reset password",
		formField{label: "Email"},
		formField{label: "Recovery token"},
		formField{label: "New password", secret: true},
		formField{label: "Repeat password", secret: true},
	)
}

func newChangePasswordForm() formModel {
	return newForm("Choose a new password",
		formField{label: "New password", secret: true},
		formField{label: "Repeat password", secret: true},
	)
}

func newCaseForm(division string, appointment models.Date) formModel {
	return newForm("New case",
		formField{label: "Division", initial: division, hint: "1VF"},
		formField{label: "Process number"},
		formField{label: "Action class"},
		formField{label: "Appointment", initial: appointment.String(), hint: "YYYY-MM-DD"},
		formField{label: "Deadline days", initial: strconv.Itoa(defaultDeadlineDays)},
		formField{label: "Interviews", initial: "0"},
		formField{label: "Predicted amount", initial: "0"},
		formField{label: "Notes"},
	)
}

func newInterviewForm(date models.Date) formModel {
	return newForm("New interview",
		formField{label: "Date", initial: date.String(), hint: "YYYY-MM-DD"},
		formField{label: "Time", hint: "HH:MM", charMax: 5},
		formField{label: "Interviewee"},
	)
}

func newFinalizeForm(date models.Date) formModel {
	return newForm("Finalize case",
		formField{label: "Delivery date", initial: date.String(), hint: "YYYY-MM-DD"},
		formField{label: "Received amount", initial: "0"},
	)
}

func newPaymentForm(received float64) formModel {
	return newForm("Register payment",
		formField{label: "Received amount", initial: strconv.FormatFloat(received, 'f', 2, 64)},
	)
}

func newFilterForm(f models.CaseFilter) formModel {
	return newForm("Filter cases",
		formField{label: "Status", initial: string(f.Status), hint: "open, in_review, delivered, received"},
		formField{label: "Division", initial: f.Division},
		formField{label: "Process number", initial: f.ProcessNumber},
	)
}

func newForceResetForm(user models.User) formModel {
	return newForm("Force reset for "+user.Email,
		formField{label: "Temporary password", secret: true},
	)
}

func loginRequest(f formModel) (models.LoginRequest, error) {
	req := models.LoginRequest{Email: f.value(0), Password: f.value(1)}
	if req.Email == "" || req.Password == "" {
		return models.LoginRequest{}, errRequiredFields
	}
	return req, nil
}

func registerRequest(f formModel) (models.RegisterRequest, error) {
	req := models.RegisterRequest{
		FirstName: f.value(0),
		LastName:  f.value(1),
		Email:     f.value(2),
		Password:  f.value(3),
	}
	if req.FirstName == "" || req.Email == "" || req.Password == "" {
		return models.RegisterRequest{}, errRequiredFields
	}
	if err := checkNewPassword(req.Password, f.value(4)); err != nil {
		return models.RegisterRequest{}, err
	}
	return req, nil
}

func resetRequest(f formModel) (models.ResetPasswordRequest, error) {
	req := models.ResetPasswordRequest{
		Email:         f.value(0),
		RecoveryToken: f.value(1),
		NewPassword:   f.value(2),
	}
	if req.Email == "" || req.RecoveryToken == "" || req.NewPassword == "" {
		return models.ResetPasswordRequest{}, errRequiredFields
	}
	if err := checkNewPassword(req.NewPassword, f.value(3)); err != nil {
		return models.ResetPasswordRequest{}, err
	}
	return req, nil
}

func changePasswordRequest(f formModel) (models.ChangePasswordRequest, error) {
	if err := checkNewPassword(f.value(0), f.value(1)); err != nil {
		return models.ChangePasswordRequest{}, err
	}
	return models.ChangePasswordRequest{NewPassword: f.value(0)}, nil
}

func newCaseRequest(f formModel) (models.NewCaseRequest, error) {
	req := models.NewCaseRequest{
		Division:      strings.ToUpper(f.value(0)),
		ProcessNumber: f.value(1),
		ActionClass:   f.value(2),
		Notes:         f.value(7),
	}
	if req.Division == "" || req.ProcessNumber == "" || req.ActionClass == "" {
		return models.NewCaseRequest{}, errRequiredFields
	}

	var err error
	if req.AppointmentDate, err = parseDateField(f.value(3)); err != nil {
		return models.NewCaseRequest{}, err
	}
	if req.DeadlineDays, err = parseCountField(f.value(4)); err != nil {
		return models.NewCaseRequest{}, err
	}
	if req.DeadlineDays == 0 {
		req.DeadlineDays = defaultDeadlineDays
	}
	if req.InterviewCount, err = parseCountField(f.value(5)); err != nil {
		return models.NewCaseRequest{}, err
	}
	if req.PredictedAmount, err = parseAmountField(f.value(6)); err != nil {
		return models.NewCaseRequest{}, err
	}
	return req, nil
}

func newInterviewRequest(f formModel) (models.NewInterviewRequest, error) {
	req := models.NewInterviewRequest{Time: f.value(1), IntervieweeName: f.value(2)}
	if req.Time == "" || req.IntervieweeName == "" {
		return models.NewInterviewRequest{}, errRequiredFields
	}

	var err error
	if req.Date, err = parseDateField(f.value(0)); err != nil {
		return models.NewInterviewRequest{}, err
	}
	if _, err = time.Parse(timeLayout, req.Time); err != nil {
		return models.NewInterviewRequest{}, errInvalidTime
	}
	return req, nil
}

func finalizeRequest(f formModel) (models.FinalizeRequest, error) {
	date, err := parseDateField(f.value(0))
	if err != nil {
		return models.FinalizeRequest{}, err
	}
	amount, err := parseAmountField(f.value(1))
	if err != nil {
		return models.FinalizeRequest{}, err
	}
	return models.FinalizeRequest{DeliveryDate: date, ReceivedAmount: amount}, nil
}

func paymentRequest(f formModel) (models.PaymentRequest, error) {
	amount, err := parseAmountField(f.value(0))
	if err != nil {
		return models.PaymentRequest{}, err
	}
	return models.PaymentRequest{ReceivedAmount: amount}, nil
}

func caseFilter(f formModel) models.CaseFilter {
	return models.CaseFilter{
		Status:        models.CaseStatus(strings.ToLower(f.value(0))),
		Division:      strings.ToUpper(f.value(1)),
		ProcessNumber: f.value(2),
	}
}

func forceResetRequest(f formModel) (models.ForceResetRequest, error) {
	password := f.value(0)
	if password == "" {
		return models.ForceResetRequest{}, errRequiredFields
	}
	if len([]rune(password)) < minPasswordLength {
		return models.ForceResetRequest{}, errPasswordTooShort
	}
	return models.ForceResetRequest{TemporaryPassword: password}, nil
}

func checkNewPassword(password, repeat string) error {
	if password == "" {
		return errRequiredFields
	}
	if len([]rune(password)) < minPasswordLength {
		return errPasswordTooShort
	}
	if password != repeat {
		return errPasswordsDontMatch
	}
	return nil
}

func parseDateField(v string) (models.Date, error) {
	if v == "" {
		return models.Date{}, errRequiredFields
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return models.Date{}, errInvalidDate
	}
	return d, nil
}

func parseCountField(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errInvalidNumber
	}
	return n, nil
}

// parseAmountField accepts both "1234.5" and "1234,5".
func parseAmountField(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil || n < 0 {
		return 0, errInvalidNumber
	}
	return n, nil
}
