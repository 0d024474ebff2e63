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

// caseRepository implements [CaseRepository]. It holds no connection of its
// own; every call runs on the DB of the partition it receives.
type caseRepository struct {
	logger *logger.Logger
}

// NewCaseRepository constructs a [CaseRepository].
func NewCaseRepository(logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{logger: logger}
}

func scanCase(row rowScanner) (models.Case, error) {
	var c models.Case
	var delivery sql.Null[models.Date]
	var status string

	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Division,
		&c.ProcessNumber,
		&c.ActionClass,
		&c.AppointmentDate,
		&c.DeadlineDays,
		&delivery,
		&c.InterviewCount,
		&c.PredictedAmount,
		&c.ReceivedAmount,
		&status,
		&c.Notes,
		&c.CreatedAt,
	)
	if err != nil {
		return models.Case{}, err
	}

	if delivery.Valid {
		date := delivery.V
		c.DeliveryDate = &date
	}
	c.Status = models.CaseStatus(status)

	return c, nil
}

// CreateCase inserts c into the partition and returns the stored row.
func (r *caseRepository) CreateCase(ctx context.Context, p Partition, c models.Case) (models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCaseQuery(p.DB.builder(), p, c)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.CreateCase").Int64("user_id", p.OwnerID).Msg("failed to build query")
		return models.Case{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCase(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.CreateCase").Int64("user_id", p.OwnerID).Msg("failed to insert case")
		return models.Case{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "*caseRepository.CreateCase").Int64("user_id", p.OwnerID).Int64("case_id", created.ID).Msg("case created")
	return created, nil
}

// GetCase returns one case of the partition or [ErrCaseNotFound].
func (r *caseRepository) GetCase(ctx context.Context, p Partition, caseID int64) (models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCaseQuery(p.DB.builder(), p, caseID)
	if err != nil {
		return models.Case{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanCase(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Case{}, ErrCaseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.GetCase").Int64("user_id", p.OwnerID).Int64("case_id", caseID).Msg("failed to read case")
		return models.Case{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return c, nil
}

// ListCases returns the cases matching filter, newest appointment first.
func (r *caseRepository) ListCases(ctx context.Context, p Partition, filter models.CaseFilter) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCasesQuery(p.DB.builder(), p, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.ListCases").Int64("user_id", p.OwnerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cases := make([]models.Case, 0, 32)
	for rows.Next() {
		c, scanErr := scanCase(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*caseRepository.ListCases").Int64("user_id", p.OwnerID).Msg("failed to scan case row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cases = append(cases, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*caseRepository.ListCases").Int64("user_id", p.OwnerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cases, nil
}

// UpdateCase writes the non-nil fields of update. An empty update only checks
// that the case exists.
func (r *caseRepository) UpdateCase(ctx context.Context, p Partition, update models.CaseUpdate) error {
	log := logger.FromContext(ctx)

	if update.Empty() {
		_, err := r.GetCase(ctx, p, update.ID)
		return err
	}

	query, args, err := buildUpdateCaseQuery(p.DB.builder(), p, update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.UpdateCase").Int64("user_id", p.OwnerID).Int64("case_id", update.ID).Msg("failed to update case")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrCaseNotFound)
}

// DeleteCase removes a case; its interviews go with it.
func (r *caseRepository) DeleteCase(ctx context.Context, p Partition, caseID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCaseQuery(p.DB.builder(), p, caseID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.DeleteCase").Int64("user_id", p.OwnerID).Int64("case_id", caseID).Msg("failed to delete case")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = expectAffected(res, ErrCaseNotFound); err != nil {
		return err
	}

	log.Info().Str("func", "*caseRepository.DeleteCase").Int64("user_id", p.OwnerID).Int64("case_id", caseID).Msg("case deleted")
	return nil
}

// ListDivisions returns the distinct divisions present in the partition.
func (r *caseRepository) ListDivisions(ctx context.Context, p Partition) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDivisionsQuery(p.DB.builder(), p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.ListDivisions").Int64("user_id", p.OwnerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	divisions := make([]string, 0, 4)
	for rows.Next() {
		var division string
		if err = rows.Scan(&division); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		divisions = append(divisions, division)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return divisions, nil
}
