// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pericias/internal/store"
)

// acquirePartition resolves the partition of an authenticated user. A
// missing identity (userID <= 0) is ErrUnauthorized. The caller must
// Release the returned partition.
func acquirePartition(ctx context.Context, partitions store.Partitioner, userID int64) (store.Partition, error) {
	if userID <= 0 {
		return store.Partition{}, ErrUnauthorized
	}

	p, err := partitions.Acquire(ctx, userID)
	if err != nil {
		return store.Partition{}, fmt.Errorf("error acquiring partition: %w", err)
	}
	return p, nil
}
