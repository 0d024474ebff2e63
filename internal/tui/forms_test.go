// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pericias/models"
)

// filled returns f with its fields set to values, in order.
func filled(f formModel, values ...string) formModel {
	for i, v := range values {
		f.inputs[i].SetValue(v)
	}
	return f
}

func TestNewCaseRequest(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    models.NewCaseRequest
		wantErr error
	}{
		{
			name:   "empty counts use defaults",
			values: []string{"2vf", "0002-22.2024", "Alimentos", "2024-03-01", "", "", "", "urgent"},
			want: models.NewCaseRequest{
				Division: "2VF", ProcessNumber: "0002-22.2024", ActionClass: "Alimentos",
				AppointmentDate: models.NewDate(2024, time.March, 1), DeadlineDays: defaultDeadlineDays,
				Notes: "urgent",
			},
		},
		{
			name:    "thousands separator",
			values:  []string{"1VF", "0001", "Guarda", "2024-01-01", "30", "0", "1.500,5"},
			wantErr: errInvalidNumber,
		},
		{
			name:   "all fields",
			values: []string{"1VF", "0001", "Guarda", "2024-01-01", "45", "3", "1500,5", ""},
			want: models.NewCaseRequest{
				Division: "1VF", ProcessNumber: "0001", ActionClass: "Guarda",
				AppointmentDate: models.NewDate(2024, time.January, 1), DeadlineDays: 45,
				InterviewCount: 3, PredictedAmount: 1500.5,
			},
		},
		{
			name:    "missing process",
			values:  []string{"1VF", "", "Guarda", "2024-01-01"},
			wantErr: errRequiredFields,
		},
		{
			name:    "bad date",
			values:  []string{"1VF", "0001", "Guarda", "01/01/2024"},
			wantErr: errInvalidDate,
		},
		{
			name:    "negative deadline",
			values:  []string{"1VF", "0001", "Guarda", "2024-01-01", "-1"},
			wantErr: errInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newCaseRequest(filled(newCaseForm("", models.NewDate(2024, time.January, 1)), tt.values...))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCaseRequest_ZeroDeadlineFallsBack(t *testing.T) {
	f := filled(newCaseForm("1VF", models.NewDate(2024, time.January, 1)), "1VF", "0001", "Guarda", "2024-01-01", "0")

	got, err := newCaseRequest(f)
	require.NoError(t, err)
	assert.Equal(t, defaultDeadlineDays, got.DeadlineDays)
}

func TestNewInterviewRequest(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		wantErr error
	}{
		{name: "valid", values: []string{"2024-01-10", "08:30", "Maria"}},
		{name: "missing name", values: []string{"2024-01-10", "08:30", ""}, wantErr: errRequiredFields},
		{name: "bad time", values: []string{"2024-01-10", "8h30", "Maria"}, wantErr: errInvalidTime},
		{name: "bad date", values: []string{"2024-13-10", "08:30", "Maria"}, wantErr: errInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newInterviewRequest(filled(newInterviewForm(models.NewDate(2024, time.January, 1)), tt.values...))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.NewDate(2024, time.January, 10), got.Date)
			assert.Equal(t, "08:30", got.Time)
		})
	}
}

func TestPasswordForms(t *testing.T) {
	_, err := changePasswordRequest(filled(newChangePasswordForm(), "secret", "secret"))
	assert.NoError(t, err)

	_, err = changePasswordRequest(filled(newChangePasswordForm(), "", ""))
	assert.ErrorIs(t, err, errRequiredFields)

	// secret fields keep surrounding spaces
	req, err := changePasswordRequest(filled(newChangePasswordForm(), " pass  ", " pass  "))
	require.NoError(t, err)
	assert.Equal(t, " pass  ", req.NewPassword)

	_, err = forceResetRequest(filled(newForceResetForm(models.User{Email: "a@b.c"}), "12345"))
	assert.ErrorIs(t, err, errPasswordTooShort)

	_, err = resetRequest(filled(newResetForm(), "a@b.c", "", "secret1", "secret1"))
	assert.ErrorIs(t, err, errRequiredFields)
}

func TestAmountFields(t *testing.T) {
	req, err := paymentRequest(filled(newPaymentForm(0), "99,90"))
	require.NoError(t, err)
	assert.InDelta(t, 99.9, req.ReceivedAmount, 1e-9)

	req, err = paymentRequest(filled(newPaymentForm(0), ""))
	require.NoError(t, err)
	assert.Zero(t, req.ReceivedAmount)

	_, err = finalizeRequest(filled(newFinalizeForm(models.NewDate(2024, time.January, 1)), "2024-01-02", "abc"))
	assert.ErrorIs(t, err, errInvalidNumber)
}

func TestCaseFilterNormalizes(t *testing.T) {
	f := caseFilter(filled(newFilterForm(models.CaseFilter{}), " In_Review ", "1vf", "0001"))

	assert.Equal(t, models.CaseFilter{Status: models.CaseInReview, Division: "1VF", ProcessNumber: "0001"}, f)
}

func TestFormFocusWraps(t *testing.T) {
	f := newLoginForm()

	f = f.focusPrev()
	assert.Equal(t, 1, f.focus)
	assert.True(t, f.inputs[1].Focused())
	assert.False(t, f.inputs[0].Focused())

	f = f.focusNext()
	assert.Equal(t, 0, f.focus)
}
