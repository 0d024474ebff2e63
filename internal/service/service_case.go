// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/deadline"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
	"github.com/MKhiriev/go-pericias/models"
)

// DefaultDeadlineDays replaces a zero deadline length on create.
const DefaultDeadlineDays = 30

var (
	errReceivedNeedsAmount  = errors.New("received can only be set by finalize or payment")
	errStatusWithPayment    = errors.New("case already holds a payment")
	errDeliveredNeedsDate   = errors.New("delivered requires a delivery date, use finalize")
	errUnknownDivision      = errors.New("unknown division")
	errDeadlineDaysTooSmall = errors.New("deadline days must be at least 1")
	errNegativeAmount       = errors.New("amount cannot be negative")
	errDeliveryDateRequired = errors.New("delivery date is required")
	errUnknownCaseStatus    = errors.New("unknown case status")
)

// caseService stores cases in their owner's partition and enforces the
// status lifecycle:
//
//	open <-> in_review -> delivered -> received
//
// received is only reachable through Finalize or RegisterPayment, which carry
// the amount. Every case it returns has its deadline computed for today.
type caseService struct {
	cases      store.CaseRepository
	partitions store.Partitioner
	reports    store.ReportStorage

	divisions []string
	clock     deadline.Clock
	now       func() time.Time

	logger *logger.Logger
}

func NewCaseService(storages *store.Storages, cfg config.App, clock deadline.Clock, logger *logger.Logger) CaseService {
	return &caseService{
		cases:      storages.Cases,
		partitions: storages.Partitions,
		reports:    storages.Reports,
		divisions:  cfg.Divisions,
		clock:      clock,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *caseService) CreateCase(ctx context.Context, userID int64, req models.NewCaseRequest) (models.Case, error) {
	division := strings.TrimSpace(req.Division)
	if !slices.Contains(s.divisions, division) {
		return models.Case{}, invalidArgument(fmt.Errorf("%w %q", errUnknownDivision, division))
	}

	days := req.DeadlineDays
	if days == 0 {
		days = DefaultDeadlineDays
	}
	if days < 1 {
		return models.Case{}, invalidArgument(errDeadlineDaysTooSmall)
	}
	if req.PredictedAmount < 0 || req.InterviewCount < 0 {
		return models.Case{}, invalidArgument(errNegativeAmount)
	}

	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.Case{}, err
	}
	defer p.Release()

	created, err := s.cases.CreateCase(ctx, p, models.Case{
		OwnerID:         userID,
		Division:        division,
		ProcessNumber:   strings.TrimSpace(req.ProcessNumber),
		ActionClass:     strings.TrimSpace(req.ActionClass),
		AppointmentDate: req.AppointmentDate,
		DeadlineDays:    days,
		InterviewCount:  req.InterviewCount,
		PredictedAmount: req.PredictedAmount,
		ReceivedAmount:  0,
		Status:          models.CaseOpen,
		Notes:           req.Notes,
		CreatedAt:       s.now().UTC(),
	})
	if err != nil {
		return models.Case{}, mapStoreError(err)
	}

	s.clock.Decorate(&created)
	return created, nil
}

func (s *caseService) GetCase(ctx context.Context, userID, caseID int64) (models.Case, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.Case{}, err
	}
	defer p.Release()

	return s.get(ctx, p, caseID)
}

func (s *caseService) get(ctx context.Context, p store.Partition, caseID int64) (models.Case, error) {
	c, err := s.cases.GetCase(ctx, p, caseID)
	if err != nil {
		return models.Case{}, mapStoreError(err)
	}
	s.clock.Decorate(&c)
	return c, nil
}

func (s *caseService) ListCases(ctx context.Context, userID int64, filter models.CaseFilter) ([]models.Case, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalidArgument(errUnknownCaseStatus)
	}

	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return nil, err
	}
	defer p.Release()

	cases, err := s.cases.ListCases(ctx, p, filter)
	if err != nil {
		return nil, mapStoreError(err)
	}

	for i := range cases {
		s.clock.Decorate(&cases[i])
	}
	return cases, nil
}

// DeleteCase removes the case, its interviews (by cascade) and its report.
func (s *caseService) DeleteCase(ctx context.Context, userID, caseID int64) error {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return err
	}
	defer p.Release()

	if err = s.cases.DeleteCase(ctx, p, caseID); err != nil {
		return mapStoreError(err)
	}

	if err = s.reports.DeleteReport(ctx, store.ReportKey(p, caseID)); err != nil && !errors.Is(err, store.ErrReportNotFound) {
		// the case is gone already; an orphaned report is only logged
		logger.FromContext(ctx).Err(err).
			Str("func", "*caseService.DeleteCase").
			Int64("user_id", userID).
			Int64("case_id", caseID).
			Msg("failed to delete report of deleted case")
	}

	return nil
}

func (s *caseService) Divisions(ctx context.Context, userID int64) (models.DivisionsResponse, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.DivisionsResponse{}, err
	}
	defer p.Release()

	inUse, err := s.cases.ListDivisions(ctx, p)
	if err != nil {
		return models.DivisionsResponse{}, mapStoreError(err)
	}
	if inUse == nil {
		inUse = []string{}
	}

	return models.DivisionsResponse{Configured: slices.Clone(s.divisions), InUse: inUse}, nil
}

// SetStatus overwrites the status. Received is rejected, as is leaving
// received while a payment is recorded and reaching delivered without a
// delivery date. Setting the current status again is a no-op.
func (s *caseService) SetStatus(ctx context.Context, userID, caseID int64, req models.StatusRequest) (models.Case, error) {
	status := req.Status
	if !status.Valid() {
		return models.Case{}, invalidArgument(errUnknownCaseStatus)
	}
	if status == models.CaseReceived {
		return models.Case{}, invalidArgument(errReceivedNeedsAmount)
	}

	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.Case{}, err
	}
	defer p.Release()

	c, err := s.get(ctx, p, caseID)
	if err != nil {
		return models.Case{}, err
	}

	if c.Status == status {
		return c, nil
	}
	if c.ReceivedAmount > 0 {
		return models.Case{}, invalidArgument(errStatusWithPayment)
	}
	if status == models.CaseDelivered && c.DeliveryDate == nil {
		return models.Case{}, invalidArgument(errDeliveredNeedsDate)
	}

	if err = s.cases.UpdateCase(ctx, p, models.CaseUpdate{ID: caseID, Status: &status}); err != nil {
		return models.Case{}, mapStoreError(err)
	}

	s.logTransition(ctx, userID, c, status)
	c.Status = status
	return c, nil
}

// Finalize records the delivery date and the amount received with it. The
// status is derived: received when the amount is positive, delivered
// otherwise.
func (s *caseService) Finalize(ctx context.Context, userID, caseID int64, req models.FinalizeRequest) (models.Case, error) {
	if req.DeliveryDate.IsZero() {
		return models.Case{}, invalidArgument(errDeliveryDateRequired)
	}
	if req.ReceivedAmount < 0 {
		return models.Case{}, invalidArgument(errNegativeAmount)
	}

	status := models.CaseDelivered
	if req.ReceivedAmount > 0 {
		status = models.CaseReceived
	}

	return s.update(ctx, userID, models.CaseUpdate{
		ID:             caseID,
		Status:         &status,
		DeliveryDate:   &req.DeliveryDate,
		ReceivedAmount: &req.ReceivedAmount,
	})
}

// RegisterPayment records the received amount and closes the case as
// received, even for a zero amount.
func (s *caseService) RegisterPayment(ctx context.Context, userID, caseID int64, req models.PaymentRequest) (models.Case, error) {
	if req.ReceivedAmount < 0 {
		return models.Case{}, invalidArgument(errNegativeAmount)
	}

	status := models.CaseReceived
	return s.update(ctx, userID, models.CaseUpdate{
		ID:             caseID,
		Status:         &status,
		ReceivedAmount: &req.ReceivedAmount,
	})
}

func (s *caseService) update(ctx context.Context, userID int64, update models.CaseUpdate) (models.Case, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.Case{}, err
	}
	defer p.Release()

	c, err := s.get(ctx, p, update.ID)
	if err != nil {
		return models.Case{}, err
	}

	if err = s.cases.UpdateCase(ctx, p, update); err != nil {
		return models.Case{}, mapStoreError(err)
	}

	s.logTransition(ctx, userID, c, *update.Status)
	c.Status = *update.Status
	if update.DeliveryDate != nil {
		date := *update.DeliveryDate
		c.DeliveryDate = &date
	}
	if update.ReceivedAmount != nil {
		c.ReceivedAmount = *update.ReceivedAmount
	}
	return c, nil
}

func (s *caseService) logTransition(ctx context.Context, userID int64, c models.Case, to models.CaseStatus) {
	logger.FromContext(ctx).Info().
		Str("func", "*caseService").
		Int64("user_id", userID).
		Int64("case_id", c.ID).
		Str("from", string(c.Status)).
		Str("to", string(to)).
		Msg("case status changed")
}
