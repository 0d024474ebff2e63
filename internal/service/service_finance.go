// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
	"github.com/MKhiriev/go-pericias/models"
)

type financeService struct {
	cases      store.CaseRepository
	partitions store.Partitioner

	logger *logger.Logger
}

func NewFinanceService(storages *store.Storages, logger *logger.Logger) FinanceService {
	return &financeService{
		cases:      storages.Cases,
		partitions: storages.Partitions,
		logger:     logger,
	}
}

// Summary aggregates every case of the partition. A partition without cases
// yields zero totals and empty lists.
func (s *financeService) Summary(ctx context.Context, userID int64) (models.FinancialSummary, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	defer p.Release()

	cases, err := s.cases.ListCases(ctx, p, models.CaseFilter{})
	if err != nil {
		return models.FinancialSummary{}, mapStoreError(err)
	}

	return Summarize(cases), nil
}

// Summarize computes the financial projection of cases:
// grand totals, per-month totals in chronological order, a status histogram
// in lifecycle order and the cases still awaiting payment, newest appointment
// first.
func Summarize(cases []models.Case) models.FinancialSummary {
	summary := models.FinancialSummary{
		Monthly:  make([]models.MonthlyTotals, 0),
		Statuses: make([]models.StatusCount, 0),
		Pending:  make([]models.PendingPayment, 0),
	}

	months := make(map[string]*models.MonthlyTotals)
	counts := make(map[models.CaseStatus]int)

	for _, c := range cases {
		summary.Totals.Predicted += c.PredictedAmount
		summary.Totals.Received += c.ReceivedAmount

		key := c.AppointmentDate.MonthKey()
		m, ok := months[key]
		if !ok {
			m = &models.MonthlyTotals{Month: key}
			months[key] = m
		}
		m.Predicted += c.PredictedAmount
		m.Received += c.ReceivedAmount

		counts[c.Status]++

		if c.ReceivedAmount < c.PredictedAmount {
			summary.Pending = append(summary.Pending, pendingPayment(c))
		}
	}
	summary.Totals.Pending = summary.Totals.Predicted - summary.Totals.Received

	for _, m := range months {
		m.Pending = m.Predicted - m.Received
		summary.Monthly = append(summary.Monthly, *m)
	}
	slices.SortFunc(summary.Monthly, func(a, b models.MonthlyTotals) int {
		return strings.Compare(a.Month, b.Month)
	})

	for _, status := range models.CaseStatuses {
		if n := counts[status]; n > 0 {
			summary.Statuses = append(summary.Statuses, models.StatusCount{Status: status, Count: n})
		}
	}

	slices.SortStableFunc(summary.Pending, func(a, b models.PendingPayment) int {
		return b.AppointmentDate.Compare(a.AppointmentDate.Time)
	})

	return summary
}

func pendingPayment(c models.Case) models.PendingPayment {
	var completion float64
	if c.PredictedAmount > 0 {
		completion = c.ReceivedAmount / c.PredictedAmount * 100
	}
	return models.PendingPayment{
		CaseID:            c.ID,
		ProcessNumber:     c.ProcessNumber,
		Division:          c.Division,
		AppointmentDate:   c.AppointmentDate,
		Status:            c.Status,
		Predicted:         c.PredictedAmount,
		Received:          c.ReceivedAmount,
		Pending:           c.PredictedAmount - c.ReceivedAmount,
		CompletionPercent: completion,
	}
}
