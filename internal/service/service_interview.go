// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
	"github.com/MKhiriev/go-pericias/models"
)

var (
	errUnknownInterviewStatus = errors.New("unknown interview status")
	errInvalidMonth           = errors.New("month must be between 1 and 12")
)

type interviewService struct {
	interviews store.InterviewRepository
	partitions store.Partitioner

	logger *logger.Logger
}

func NewInterviewService(storages *store.Storages, logger *logger.Logger) InterviewService {
	return &interviewService{
		interviews: storages.Interviews,
		partitions: storages.Partitions,
		logger:     logger,
	}
}

// AddInterview schedules a pending interview on a case of the partition.
func (s *interviewService) AddInterview(ctx context.Context, userID, caseID int64, req models.NewInterviewRequest) (models.Interview, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.Interview{}, err
	}
	defer p.Release()

	created, err := s.interviews.CreateInterview(ctx, p, models.Interview{
		CaseID:          caseID,
		Date:            req.Date,
		Time:            req.Time,
		IntervieweeName: strings.TrimSpace(req.IntervieweeName),
		Status:          models.InterviewPending,
	})
	if err != nil {
		return models.Interview{}, mapStoreError(err)
	}

	return created, nil
}

func (s *interviewService) ListCaseInterviews(ctx context.Context, userID, caseID int64) ([]models.Interview, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return nil, err
	}
	defer p.Release()

	interviews, err := s.interviews.ListCaseInterviews(ctx, p, caseID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return nonNil(interviews), nil
}

func (s *interviewService) SetInterviewStatus(ctx context.Context, userID, interviewID int64, req models.InterviewStatusRequest) (models.Interview, error) {
	if !req.Status.Valid() {
		return models.Interview{}, invalidArgument(errUnknownInterviewStatus)
	}

	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.Interview{}, err
	}
	defer p.Release()

	if err = s.interviews.UpdateInterviewStatus(ctx, p, interviewID, req.Status); err != nil {
		return models.Interview{}, mapStoreError(err)
	}

	iv, err := s.interviews.GetInterview(ctx, p, interviewID)
	if err != nil {
		return models.Interview{}, mapStoreError(err)
	}
	return iv, nil
}

func (s *interviewService) DeleteInterview(ctx context.Context, userID, interviewID int64) error {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return err
	}
	defer p.Release()

	return mapStoreError(s.interviews.DeleteInterview(ctx, p, interviewID))
}

// UpcomingInterviews lists pending interviews with their case context,
// earliest first.
func (s *interviewService) UpcomingInterviews(ctx context.Context, userID int64) ([]models.UpcomingInterview, error) {
	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return nil, err
	}
	defer p.Release()

	upcoming, err := s.interviews.ListUpcomingInterviews(ctx, p)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return nonNil(upcoming), nil
}

// MonthCalendar returns the interviews of a month and their per-day counts.
func (s *interviewService) MonthCalendar(ctx context.Context, userID int64, year, month int) (models.MonthCalendar, error) {
	if month < 1 || month > 12 {
		return models.MonthCalendar{}, invalidArgument(errInvalidMonth)
	}

	p, err := acquirePartition(ctx, s.partitions, userID)
	if err != nil {
		return models.MonthCalendar{}, err
	}
	defer p.Release()

	from := models.NewDate(year, time.Month(month), 1)
	to := models.Date{Time: from.AddDate(0, 1, 0)}

	interviews, err := s.interviews.ListMonthInterviews(ctx, p, from, to)
	if err != nil {
		return models.MonthCalendar{}, mapStoreError(err)
	}

	return models.MonthCalendar{
		Year:       year,
		Month:      month,
		Interviews: nonNil(interviews),
		Days:       calendarDays(interviews),
	}, nil
}

// calendarDays counts interviews per day. Input is ordered by date, so is
// the output.
func calendarDays(interviews []models.Interview) []models.CalendarDay {
	days := make([]models.CalendarDay, 0)
	for _, iv := range interviews {
		if n := len(days); n == 0 || !days[n-1].Date.Equal(iv.Date.Time) {
			days = append(days, models.CalendarDay{Date: iv.Date})
		}
		day := &days[len(days)-1]
		day.Total++
		if iv.Status == models.InterviewPending {
			day.Pending++
		}
	}
	return days
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
