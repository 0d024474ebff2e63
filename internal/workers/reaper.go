// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
)

// PartitionReaper periodically closes partition handles that were not used
// for the idle timeout.
type PartitionReaper struct {
	partitions store.Partitioner
	interval   time.Duration
	idle       time.Duration
	logger     *logger.Logger
}

func NewPartitionReaper(partitions store.Partitioner, interval, idle time.Duration, logger *logger.Logger) *PartitionReaper {
	return &PartitionReaper{
		partitions: partitions,
		interval:   interval,
		idle:       idle,
		logger:     logger,
	}
}

func (r *PartitionReaper) Run(ctx context.Context) {
	if r.partitions == nil || r.interval <= 0 {
		return
	}

	r.logger.Info().Dur("interval", r.interval).Dur("idle", r.idle).Msg("partition reaper started")
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("partition reaper stopped")
			return
		case <-ticker.C:
			r.reap()
		}
	}
}

func (r *PartitionReaper) reap() {
	if closed := r.partitions.Evict(r.idle); closed > 0 {
		r.logger.Debug().Str("func", "*PartitionReaper.reap").Int("closed", closed).Msg("idle partitions closed")
	}
}
