// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/models"
)

// interviewRepository implements [InterviewRepository]. Interviews carry no
// owner column; every statement reaches them through a case of the
// partition owner.
type interviewRepository struct {
	logger *logger.Logger
}

// NewInterviewRepository constructs an [InterviewRepository].
func NewInterviewRepository(logger *logger.Logger) InterviewRepository {
	logger.Debug().Msg("creating interview repository")
	return &interviewRepository{logger: logger}
}

func scanInterview(row rowScanner, extra ...any) (models.Interview, error) {
	var iv models.Interview
	var status string

	dest := append([]any{&iv.ID, &iv.CaseID, &iv.Date, &iv.Time, &iv.IntervieweeName, &status}, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.Interview{}, err
	}

	iv.Status = models.InterviewStatus(status)
	return iv, nil
}

// caseExists returns [ErrCaseNotFound] unless caseID names a case of the
// partition owner.
func (r *interviewRepository) caseExists(ctx context.Context, p Partition, caseID int64, fn string) error {
	query, args, err := buildCaseExistsQuery(p.DB.builder(), p, caseID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Int64("user_id", p.OwnerID).Msg("failed to check case")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count == 0 {
		return ErrCaseNotFound
	}
	return nil
}

// CreateInterview adds an interview to a case of the partition. A case id
// outside the partition yields [ErrCaseNotFound].
func (r *interviewRepository) CreateInterview(ctx context.Context, p Partition, iv models.Interview) (models.Interview, error) {
	log := logger.FromContext(ctx)

	if err := r.caseExists(ctx, p, iv.CaseID, "*interviewRepository.CreateInterview"); err != nil {
		return models.Interview{}, err
	}

	query, args, err := buildCreateInterviewQuery(p.DB.builder(), iv)
	if err != nil {
		return models.Interview{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanInterview(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Interview{}, ErrCaseNotFound
		}
		log.Err(err).Str("func", "*interviewRepository.CreateInterview").Int64("user_id", p.OwnerID).Int64("case_id", iv.CaseID).Msg("failed to insert interview")
		return models.Interview{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetInterview returns one interview of the partition or [ErrInterviewNotFound].
func (r *interviewRepository) GetInterview(ctx context.Context, p Partition, interviewID int64) (models.Interview, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetInterviewQuery(p.DB.builder(), p, interviewID)
	if err != nil {
		return models.Interview{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	iv, err := scanInterview(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Interview{}, ErrInterviewNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*interviewRepository.GetInterview").Int64("user_id", p.OwnerID).Msg("failed to read interview")
		return models.Interview{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return iv, nil
}

// ListCaseInterviews returns the interviews of one case ordered by date and
// time. A case id outside the partition yields [ErrCaseNotFound].
func (r *interviewRepository) ListCaseInterviews(ctx context.Context, p Partition, caseID int64) ([]models.Interview, error) {
	if err := r.caseExists(ctx, p, caseID, "*interviewRepository.ListCaseInterviews"); err != nil {
		return nil, err
	}

	query, args, err := buildListCaseInterviewsQuery(p.DB.builder(), p, caseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, p, "*interviewRepository.ListCaseInterviews", query, args)
}

// ListMonthInterviews returns interviews dated in [from, to).
func (r *interviewRepository) ListMonthInterviews(ctx context.Context, p Partition, from, to models.Date) ([]models.Interview, error) {
	query, args, err := buildListMonthInterviewsQuery(p.DB.builder(), p, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, p, "*interviewRepository.ListMonthInterviews", query, args)
}

func (r *interviewRepository) list(ctx context.Context, p Partition, fn, query string, args []any) ([]models.Interview, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", p.OwnerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	interviews := make([]models.Interview, 0, 16)
	for rows.Next() {
		iv, scanErr := scanInterview(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Int64("user_id", p.OwnerID).Msg("failed to scan interview row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		interviews = append(interviews, iv)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Int64("user_id", p.OwnerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return interviews, nil
}

// ListUpcomingInterviews returns every pending interview joined with the
// data of its case, soonest first.
func (r *interviewRepository) ListUpcomingInterviews(ctx context.Context, p Partition) ([]models.UpcomingInterview, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUpcomingInterviewsQuery(p.DB.builder(), p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*interviewRepository.ListUpcomingInterviews").Int64("user_id", p.OwnerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	upcoming := make([]models.UpcomingInterview, 0, 16)
	for rows.Next() {
		var item models.UpcomingInterview
		iv, scanErr := scanInterview(rows, &item.ProcessNumber, &item.ActionClass, &item.Division)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*interviewRepository.ListUpcomingInterviews").Int64("user_id", p.OwnerID).Msg("failed to scan interview row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		item.Interview = iv
		upcoming = append(upcoming, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return upcoming, nil
}

// UpdateInterviewStatus sets the status of one interview of the partition.
func (r *interviewRepository) UpdateInterviewStatus(ctx context.Context, p Partition, interviewID int64, status models.InterviewStatus) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateInterviewStatusQuery(p.DB.builder(), p, interviewID, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*interviewRepository.UpdateInterviewStatus").Int64("user_id", p.OwnerID).Msg("failed to update interview")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrInterviewNotFound)
}

// DeleteInterview removes one interview of the partition.
func (r *interviewRepository) DeleteInterview(ctx context.Context, p Partition, interviewID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteInterviewQuery(p.DB.builder(), p, interviewID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*interviewRepository.DeleteInterview").Int64("user_id", p.OwnerID).Msg("failed to delete interview")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrInterviewNotFound)
}
