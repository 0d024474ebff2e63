// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/deadline"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
)

// Services is the set of services handed to the HTTP layer. Auth, case and
// interview services are wrapped with input validation.
type Services struct {
	AuthService      AuthService
	CaseService      CaseService
	InterviewService InterviewService
	FinanceService   FinanceService
	ReportService    ReportService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, fmt.Errorf("error resolving time zone: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	clock := deadline.NewClock(loc)

	return &Services{
		AuthService:      NewAuthValidationService().Wrap(NewAuthService(storages.Users, storages.Partitions, cfg.App, logger)),
		CaseService:      NewCaseValidationService().Wrap(NewCaseService(storages, cfg.App, clock, logger)),
		InterviewService: NewInterviewValidationService().Wrap(NewInterviewService(storages, logger)),
		FinanceService:   NewFinanceService(storages, logger),
		ReportService:    NewReportService(storages, logger),
		AppInfoService:   appInfo,
	}, nil
}
