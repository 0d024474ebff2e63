// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/migrations"
)

// Partition is a resolved handle on the case store of one user. Every case
// and interview statement filters on OwnerID.
type Partition struct {
	Key     string
	OwnerID int64
	DB      *DB

	release func()
}

// Release returns the handle to its partitioner. It is safe to call on a
// zero Partition and more than once.
func (p *Partition) Release() {
	if p.release != nil {
		p.release()
		p.release = nil
	}
}

// PartitionKey derives the partition key of a user.
func PartitionKey(userID int64) string {
	return fmt.Sprintf("user_%d", userID)
}

// NewPartitioner picks the partitioning scheme matching the credential
// database: a shared schema on PostgreSQL, one file per user on SQLite.
func NewPartitioner(db *DB, cfg config.Partitions, log *logger.Logger) Partitioner {
	if db.Dialect() == DialectPostgres {
		return newSharedPartitioner(db, log)
	}
	return newFilePartitioner(cfg.Dir, log)
}

// ── shared ────────────────────────────────────────────────────────────────────

// sharedPartitioner keeps every partition in the credential database. A row
// in case_partitions marks a provisioned partition.
type sharedPartitioner struct {
	db     *DB
	known  sync.Map
	logger *logger.Logger
}

func newSharedPartitioner(db *DB, log *logger.Logger) *sharedPartitioner {
	log.Debug().Msg("creating shared partitioner")
	return &sharedPartitioner{db: db, logger: log}
}

func (s *sharedPartitioner) Ensure(ctx context.Context, userID int64) error {
	if _, ok := s.known.Load(userID); ok {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildRegisterPartitionQuery(s.db.builder(), userID, PartitionKey(userID))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sharedPartitioner.Ensure").Int64("user_id", userID).Msg("failed to register partition")
		return fmt.Errorf("%w: %w", ErrOpeningPartition, err)
	}

	s.known.Store(userID, struct{}{})
	return nil
}

func (s *sharedPartitioner) Acquire(ctx context.Context, userID int64) (Partition, error) {
	if err := s.Ensure(ctx, userID); err != nil {
		return Partition{}, err
	}

	return Partition{Key: PartitionKey(userID), OwnerID: userID, DB: s.db}, nil
}

func (s *sharedPartitioner) Evict(time.Duration) int {
	return 0
}

func (s *sharedPartitioner) Close() error {
	return nil
}

// ── file ──────────────────────────────────────────────────────────────────────

type partitionHandle struct {
	db       *DB
	inUse    int
	lastUsed time.Time
}

// filePartitioner stores each partition in <dir>/cases_user_<id>.db and keeps
// opened handles until they idle out.
type filePartitioner struct {
	dir     string
	mu      sync.Mutex
	handles map[int64]*partitionHandle
	closed  bool
	now     func() time.Time
	logger  *logger.Logger
}

func newFilePartitioner(dir string, log *logger.Logger) *filePartitioner {
	log.Debug().Str("dir", dir).Msg("creating file partitioner")
	return &filePartitioner{
		dir:     dir,
		handles: make(map[int64]*partitionHandle),
		now:     time.Now,
		logger:  log,
	}
}

func (f *filePartitioner) path(userID int64) string {
	return filepath.Join(f.dir, fmt.Sprintf("cases_%s.db", PartitionKey(userID)))
}

func (f *filePartitioner) Ensure(ctx context.Context, userID int64) error {
	p, err := f.Acquire(ctx, userID)
	if err != nil {
		return err
	}
	p.Release()
	return nil
}

func (f *filePartitioner) Acquire(ctx context.Context, userID int64) (Partition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return Partition{}, ErrPartitionClosed
	}

	h, ok := f.handles[userID]
	if !ok {
		db, err := f.open(ctx, userID)
		if err != nil {
			return Partition{}, err
		}
		h = &partitionHandle{db: db}
		f.handles[userID] = h
	}

	h.inUse++
	h.lastUsed = f.now()

	// copies of the returned Partition share one release
	var once sync.Once
	return Partition{
		Key:     PartitionKey(userID),
		OwnerID: userID,
		DB:      h.db,
		release: func() { once.Do(func() { f.release(h) }) },
	}, nil
}

func (f *filePartitioner) open(ctx context.Context, userID int64) (*DB, error) {
	log := logger.FromContext(ctx)

	db, err := NewConnectSQLite(ctx, f.path(userID), f.logger)
	if err != nil {
		log.Err(err).Str("func", "*filePartitioner.open").Int64("user_id", userID).Msg("failed to open partition")
		return nil, fmt.Errorf("%w: %w", ErrOpeningPartition, err)
	}

	if err = migrations.Migrate(ctx, db.DB, migrations.SQLitePartitionSchema); err != nil {
		log.Err(err).Str("func", "*filePartitioner.open").Int64("user_id", userID).Msg("failed to migrate partition")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningPartition, err)
	}

	log.Debug().Str("func", "*filePartitioner.open").Int64("user_id", userID).Msg("partition opened")
	return db, nil
}

func (f *filePartitioner) release(h *partitionHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if h.inUse > 0 {
		h.inUse--
	}
	h.lastUsed = f.now()
}

// Evict closes handles that are not in use and were last used at least idle
// ago.
func (f *filePartitioner) Evict(idle time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	evicted := 0
	for userID, h := range f.handles {
		if h.inUse > 0 || now.Sub(h.lastUsed) < idle {
			continue
		}
		if err := h.db.Close(); err != nil {
			f.logger.Err(err).Str("func", "*filePartitioner.Evict").Int64("user_id", userID).Msg("failed to close partition")
		}
		delete(f.handles, userID)
		evicted++
	}

	return evicted
}

func (f *filePartitioner) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for userID, h := range f.handles {
		if err := h.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("partition %s: %w", PartitionKey(userID), err))
		}
		delete(f.handles, userID)
	}
	f.closed = true

	return errors.Join(errs...)
}
