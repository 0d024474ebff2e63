// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-pericias/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists the credential table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateCredentials(ctx context.Context, update models.CredentialsUpdate) error
}

// Partitioner resolves the isolated case store of a user.
//
// Ensure provisions the partition and is safe to call repeatedly. Acquire
// provisions lazily and returns a handle that must be released after use.
// Evict closes handles unused for at least idle and returns how many were
// closed.
type Partitioner interface {
	Ensure(ctx context.Context, userID int64) error
	Acquire(ctx context.Context, userID int64) (Partition, error)
	Evict(idle time.Duration) int
	Close() error
}

// CaseRepository reads and writes cases of one partition.
type CaseRepository interface {
	CreateCase(ctx context.Context, p Partition, c models.Case) (models.Case, error)
	GetCase(ctx context.Context, p Partition, caseID int64) (models.Case, error)
	ListCases(ctx context.Context, p Partition, filter models.CaseFilter) ([]models.Case, error)
	UpdateCase(ctx context.Context, p Partition, update models.CaseUpdate) error
	DeleteCase(ctx context.Context, p Partition, caseID int64) error
	ListDivisions(ctx context.Context, p Partition) ([]string, error)
}

// InterviewRepository reads and writes interviews of one partition.
type InterviewRepository interface {
	CreateInterview(ctx context.Context, p Partition, iv models.Interview) (models.Interview, error)
	GetInterview(ctx context.Context, p Partition, interviewID int64) (models.Interview, error)
	ListCaseInterviews(ctx context.Context, p Partition, caseID int64) ([]models.Interview, error)
	ListMonthInterviews(ctx context.Context, p Partition, from, to models.Date) ([]models.Interview, error)
	ListUpcomingInterviews(ctx context.Context, p Partition) ([]models.UpcomingInterview, error)
	UpdateInterviewStatus(ctx context.Context, p Partition, interviewID int64, status models.InterviewStatus) error
	DeleteInterview(ctx context.Context, p Partition, interviewID int64) error
}

// ReportStorage archives one report file per case.
type ReportStorage interface {
	PutReport(ctx context.Context, key, contentType string, body io.Reader, size int64) (models.ReportObject, error)
	GetReport(ctx context.Context, key string) (io.ReadCloser, models.ReportObject, error)
	DeleteReport(ctx context.Context, key string) error
}
