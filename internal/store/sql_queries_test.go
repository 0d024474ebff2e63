// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pericias/models"
)

var (
	pgBuilder   = DialectPostgres.builder()
	liteBuilder = DialectSQLite.builder()
	partition7  = Partition{Key: PartitionKey(7), OwnerID: 7}
)

func strPtr(s string) *string { return &s }

func TestPartitionKey(t *testing.T) {
	assert.Equal(t, "user_7", PartitionKey(7))
	assert.Equal(t, "user_7/case_3", ReportKey(partition7, 3))
}

func Test_buildCreateUserQuery(t *testing.T) {
	user := models.User{
		FirstName:     "Ana",
		LastName:      "Lima",
		Email:         "ana@example.com",
		PasswordHash:  "hash",
		RecoveryToken: "tok",
		Role:          models.RoleNormal,
	}

	query, args, err := buildCreateUserQuery(pgBuilder, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning id")
	require.Contains(t, query, "$7")
	require.Len(t, args, 7)
	assert.Equal(t, "ana@example.com", args[2])
	assert.Equal(t, "normal", args[6])
}

func Test_buildCreateUserQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildCreateUserQuery(liteBuilder, models.User{Email: "x"})
	require.NoError(t, err)
	assert.NotContains(t, query, "$1")
	assert.Equal(t, 7, strings.Count(query, "?"))
}

func Test_buildUpdateCredentialsQuery(t *testing.T) {
	tests := []struct {
		name      string
		update    models.CredentialsUpdate
		wantToken bool
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "keeps token",
			update:    models.CredentialsUpdate{UserID: 3, PasswordHash: "h"},
			wantWhere: "WHERE id = $3",
			wantArgs:  []any{"h", false, int64(3)},
		},
		{
			name:      "rotates token",
			update:    models.CredentialsUpdate{UserID: 3, PasswordHash: "h", MustChangePassword: true, RecoveryToken: strPtr("next")},
			wantToken: true,
			wantWhere: "WHERE id = $4",
			wantArgs:  []any{"h", true, sql.NullString{String: "next", Valid: true}, int64(3)},
		},
		{
			name: "rotates only the expected token",
			update: models.CredentialsUpdate{
				UserID: 3, PasswordHash: "h", RecoveryToken: strPtr("next"), ExpectedRecoveryToken: strPtr("prev"),
			},
			wantToken: true,
			wantWhere: "WHERE id = $4 AND recovery_token = $5",
			wantArgs:  []any{"h", false, sql.NullString{String: "next", Valid: true}, int64(3), "prev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateCredentialsQuery(pgBuilder, tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, strings.Contains(query, "SET password_hash = $1, must_change_password = $2, recovery_token"))
			assert.True(t, strings.HasSuffix(query, tt.wantWhere), query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildListCasesQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.CaseFilter
		contains []string
		wantArgs []any
	}{
		{
			name:     "no filter",
			filter:   models.CaseFilter{},
			contains: []string{"owner_id = $1", "ORDER BY appointment_date DESC"},
			wantArgs: []any{int64(7)},
		},
		{
			name:     "status and division",
			filter:   models.CaseFilter{Status: models.CaseOpen, Division: "2VF"},
			contains: []string{"owner_id = $1", "status = $2", "division = $3"},
			wantArgs: []any{int64(7), "open", "2VF"},
		},
		{
			name:     "process number substring",
			filter:   models.CaseFilter{ProcessNumber: "123"},
			contains: []string{"LOWER(process_number) LIKE $2 ESCAPE '\\'"},
			wantArgs: []any{int64(7), "%123%"},
		},
		{
			name:     "process number wildcards are literal",
			filter:   models.CaseFilter{ProcessNumber: `AB_1%\`},
			contains: []string{"LOWER(process_number) LIKE $2"},
			wantArgs: []any{int64(7), `%ab\_1\%\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCasesQuery(pgBuilder, partition7, tt.filter)
			require.NoError(t, err)
			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateCaseQuery(t *testing.T) {
	status := models.CaseReceived
	amount := 150.0
	date := models.NewDate(2024, 2, 1)

	query, args, err := buildUpdateCaseQuery(pgBuilder, partition7, models.CaseUpdate{
		ID:             9,
		Status:         &status,
		DeliveryDate:   &date,
		ReceivedAmount: &amount,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "status = $1")
	assert.Contains(t, query, "delivery_date = $2")
	assert.Contains(t, query, "received_amount = $3")
	assert.Contains(t, query, "owner_id = $4")
	assert.Contains(t, query, "id = $5")
	assert.Equal(t, []any{"received", date, amount, int64(7), int64(9)}, args)
}

// Every statement touching case data must be scoped to the partition owner.
func Test_caseDataStatementsAreOwnerScoped(t *testing.T) {
	status := models.CaseOpen
	builders := []struct {
		name  string
		build func() (string, []any, error)
	}{
		{
			name:  "get case",
			build: func() (string, []any, error) { return buildGetCaseQuery(pgBuilder, partition7, 1) },
		},
		{
			name:  "list cases",
			build: func() (string, []any, error) { return buildListCasesQuery(pgBuilder, partition7, models.CaseFilter{}) },
		},
		{
			name: "update case",
			build: func() (string, []any, error) {
				return buildUpdateCaseQuery(pgBuilder, partition7, models.CaseUpdate{ID: 1, Status: &status})
			},
		},
		{
			name:  "delete case",
			build: func() (string, []any, error) { return buildDeleteCaseQuery(pgBuilder, partition7, 1) },
		},
		{
			name:  "divisions",
			build: func() (string, []any, error) { return buildListDivisionsQuery(pgBuilder, partition7) },
		},
		{
			name:  "case exists",
			build: func() (string, []any, error) { return buildCaseExistsQuery(pgBuilder, partition7, 1) },
		},
		{
			name:  "get interview",
			build: func() (string, []any, error) { return buildGetInterviewQuery(pgBuilder, partition7, 1) },
		},
		{
			name:  "case interviews",
			build: func() (string, []any, error) { return buildListCaseInterviewsQuery(pgBuilder, partition7, 1) },
		},
		{
			name: "month interviews",
			build: func() (string, []any, error) {
				return buildListMonthInterviewsQuery(pgBuilder, partition7, models.NewDate(2024, 1, 1), models.NewDate(2024, 2, 1))
			},
		},
		{
			name:  "upcoming",
			build: func() (string, []any, error) { return buildListUpcomingInterviewsQuery(pgBuilder, partition7) },
		},
		{
			name: "interview status",
			build: func() (string, []any, error) {
				return buildUpdateInterviewStatusQuery(pgBuilder, partition7, 1, models.InterviewDone)
			},
		},
		{
			name:  "delete interview",
			build: func() (string, []any, error) { return buildDeleteInterviewQuery(pgBuilder, partition7, 1) },
		},
	}

	for _, tt := range builders {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Contains(t, query, "owner_id")
			assert.Contains(t, args, int64(7))
		})
	}
}

func Test_buildListUpcomingInterviewsQuery(t *testing.T) {
	query, args, err := buildListUpcomingInterviewsQuery(pgBuilder, partition7)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "join cases c on c.id = i.case_id")
	assert.Contains(t, q, "c.process_number")
	assert.Contains(t, q, "order by i.date, i.time")
	assert.Equal(t, []any{int64(7), "pending"}, args)
}

func Test_buildRegisterPartitionQuery(t *testing.T) {
	query, args, err := buildRegisterPartitionQuery(pgBuilder, 7, "user_7")
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT DO NOTHING")
	assert.Equal(t, []any{int64(7), "user_7"}, args)
}
