// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/payment-system/backend/internal/domain/entity"
)

// StatisticsCache caches the per-category payment statistics for a
// short interval so repeated reporting calls do not re-aggregate.
type StatisticsCache interface {
	// Get returns the cached statistics and whether an entry was present.
	Get(ctx context.Context) ([]*entity.CategoryStatistics, bool, error)

	// Set stores the statistics until the cache TTL elapses.
	Set(ctx context.Context, stats []*entity.CategoryStatistics) error
}
