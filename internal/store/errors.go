// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecoveryTokenChanged is returned when a conditional credentials
	// write finds the stored recovery token already replaced.
	ErrRecoveryTokenChanged = errors.New("recovery token has changed")

	// ErrCaseNotFound is returned when a case id does not exist inside the
	// caller's partition.
	ErrCaseNotFound = errors.New("case was not found")

	// ErrInterviewNotFound is returned when an interview id does not exist
	// inside the caller's partition.
	ErrInterviewNotFound = errors.New("interview was not found")

	// ErrReportNotFound is returned when a case has no archived report.
	ErrReportNotFound = errors.New("report was not found")

	// ErrPartitionClosed is returned by a partitioner after Close.
	ErrPartitionClosed = errors.New("partitioner is closed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrOpeningPartition is returned when a partition store cannot be opened
	// or migrated.
	ErrOpeningPartition = errors.New("failed to open partition")
)
