// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pericias/models"
)

var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"password_hash",
	"recovery_token",
	"must_change_password",
	"role",
	"created_at",
}

var caseColumns = []string{
	"id",
	"owner_id",
	"division",
	"process_number",
	"action_class",
	"appointment_date",
	"deadline_days",
	"delivery_date",
	"interview_count",
	"predicted_amount",
	"received_amount",
	"status",
	"notes",
	"created_at",
}

var interviewColumns = []string{
	"i.id",
	"i.case_id",
	"i.date",
	"i.time",
	"i.interviewee_name",
	"i.status",
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("first_name", "last_name", "email", "password_hash", "recovery_token", "must_change_password", "role").
		Values(user.FirstName, user.LastName, user.Email, user.PasswordHash, nullString(user.RecoveryToken), user.MustChangePassword, string(user.Role)).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		OrderBy("id").
		ToSql()
}

func buildUpdateCredentialsQuery(b sq.StatementBuilderType, update models.CredentialsUpdate) (string, []any, error) {
	query := b.Update("users").
		Set("password_hash", update.PasswordHash).
		Set("must_change_password", update.MustChangePassword)

	if update.RecoveryToken != nil {
		query = query.Set("recovery_token", nullString(*update.RecoveryToken))
	}

	query = query.Where(sq.Eq{"id": update.UserID})
	if update.ExpectedRecoveryToken != nil {
		query = query.Where(sq.Eq{"recovery_token": *update.ExpectedRecoveryToken})
	}

	return query.ToSql()
}

// ── partitions ────────────────────────────────────────────────────────────────

func buildRegisterPartitionQuery(b sq.StatementBuilderType, userID int64, key string) (string, []any, error) {
	return b.Insert("case_partitions").
		Columns("owner_id", "partition_key").
		Values(userID, key).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

// ── cases ─────────────────────────────────────────────────────────────────────

func buildCreateCaseQuery(b sq.StatementBuilderType, p Partition, c models.Case) (string, []any, error) {
	return b.Insert("cases").
		Columns(
			"owner_id",
			"division",
			"process_number",
			"action_class",
			"appointment_date",
			"deadline_days",
			"interview_count",
			"predicted_amount",
			"received_amount",
			"status",
			"notes",
		).
		Values(
			p.OwnerID,
			c.Division,
			c.ProcessNumber,
			c.ActionClass,
			c.AppointmentDate,
			c.DeadlineDays,
			c.InterviewCount,
			c.PredictedAmount,
			c.ReceivedAmount,
			string(c.Status),
			c.Notes,
		).
		Suffix(returning(caseColumns)).
		ToSql()
}

func buildGetCaseQuery(b sq.StatementBuilderType, p Partition, caseID int64) (string, []any, error) {
	return b.Select(caseColumns...).
		From("cases").
		Where(sq.Eq{"owner_id": p.OwnerID}).
		Where(sq.Eq{"id": caseID}).
		ToSql()
}

// likeEscaper makes the LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsFold matches column values holding needle, ignoring case. It behaves
// the same on SQLite and Postgres.
func containsFold(column, needle string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") LIKE ? ESCAPE '\\'", "%"+likeEscaper.Replace(strings.ToLower(needle))+"%")
}

// buildListCasesQuery AND-combines the non-empty filter predicates. The
// process number matches as a case-insensitive literal substring.
func buildListCasesQuery(b sq.StatementBuilderType, p Partition, filter models.CaseFilter) (string, []any, error) {
	query := b.Select(caseColumns...).
		From("cases").
		Where(sq.Eq{"owner_id": p.OwnerID})

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Division != "" {
		query = query.Where(sq.Eq{"division": filter.Division})
	}
	if filter.ProcessNumber != "" {
		query = query.Where(containsFold("process_number", filter.ProcessNumber))
	}

	return query.OrderBy("appointment_date DESC", "id DESC").ToSql()
}

func buildUpdateCaseQuery(b sq.StatementBuilderType, p Partition, update models.CaseUpdate) (string, []any, error) {
	query := b.Update("cases")

	if update.Status != nil {
		query = query.Set("status", string(*update.Status))
	}
	if update.DeliveryDate != nil {
		query = query.Set("delivery_date", *update.DeliveryDate)
	}
	if update.ReceivedAmount != nil {
		query = query.Set("received_amount", *update.ReceivedAmount)
	}

	return query.
		Where(sq.Eq{"owner_id": p.OwnerID}).
		Where(sq.Eq{"id": update.ID}).
		ToSql()
}

func buildDeleteCaseQuery(b sq.StatementBuilderType, p Partition, caseID int64) (string, []any, error) {
	return b.Delete("cases").
		Where(sq.Eq{"owner_id": p.OwnerID}).
		Where(sq.Eq{"id": caseID}).
		ToSql()
}

func buildListDivisionsQuery(b sq.StatementBuilderType, p Partition) (string, []any, error) {
	return b.Select("DISTINCT division").
		From("cases").
		Where(sq.Eq{"owner_id": p.OwnerID}).
		OrderBy("division").
		ToSql()
}

func buildCaseExistsQuery(b sq.StatementBuilderType, p Partition, caseID int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From("cases").
		Where(sq.Eq{"owner_id": p.OwnerID}).
		Where(sq.Eq{"id": caseID}).
		ToSql()
}

// ── interviews ────────────────────────────────────────────────────────────────

// ownedCases restricts interview statements to cases of the partition owner.
func ownedCases(p Partition) sq.Sqlizer {
	return sq.Expr("case_id IN (SELECT id FROM cases WHERE owner_id = ?)", p.OwnerID)
}

func buildCreateInterviewQuery(b sq.StatementBuilderType, iv models.Interview) (string, []any, error) {
	return b.Insert("interviews").
		Columns("case_id", "date", "time", "interviewee_name", "status").
		Values(iv.CaseID, iv.Date, iv.Time, iv.IntervieweeName, string(iv.Status)).
		Suffix("RETURNING id, case_id, date, time, interviewee_name, status").
		ToSql()
}

func selectInterviews(b sq.StatementBuilderType, p Partition) sq.SelectBuilder {
	return b.Select(interviewColumns...).
		From("interviews i").
		Join("cases c ON c.id = i.case_id").
		Where(sq.Eq{"c.owner_id": p.OwnerID})
}

func buildGetInterviewQuery(b sq.StatementBuilderType, p Partition, interviewID int64) (string, []any, error) {
	return selectInterviews(b, p).
		Where(sq.Eq{"i.id": interviewID}).
		ToSql()
}

func buildListCaseInterviewsQuery(b sq.StatementBuilderType, p Partition, caseID int64) (string, []any, error) {
	return selectInterviews(b, p).
		Where(sq.Eq{"i.case_id": caseID}).
		OrderBy("i.date", "i.time", "i.id").
		ToSql()
}

func buildListMonthInterviewsQuery(b sq.StatementBuilderType, p Partition, from, to models.Date) (string, []any, error) {
	return selectInterviews(b, p).
		Where(sq.GtOrEq{"i.date": from}).
		Where(sq.Lt{"i.date": to}).
		OrderBy("i.date", "i.time", "i.id").
		ToSql()
}

func buildListUpcomingInterviewsQuery(b sq.StatementBuilderType, p Partition) (string, []any, error) {
	return selectInterviews(b, p).
		Columns("c.process_number", "c.action_class", "c.division").
		Where(sq.Eq{"i.status": string(models.InterviewPending)}).
		OrderBy("i.date", "i.time", "i.id").
		ToSql()
}

func buildUpdateInterviewStatusQuery(b sq.StatementBuilderType, p Partition, interviewID int64, status models.InterviewStatus) (string, []any, error) {
	return b.Update("interviews").
		Set("status", string(status)).
		Where(sq.Eq{"id": interviewID}).
		Where(ownedCases(p)).
		ToSql()
}

func buildDeleteInterviewQuery(b sq.StatementBuilderType, p Partition, interviewID int64) (string, []any, error) {
	return b.Delete("interviews").
		Where(sq.Eq{"id": interviewID}).
		Where(ownedCases(p)).
		ToSql()
}
