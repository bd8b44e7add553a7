// Package cache implements Redis-backed caching adapters.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
)

// statisticsKey is the single cache entry for the category report.
const statisticsKey = "payments:statistics:by-category"

// statisticsCache implements the adapter.StatisticsCache interface.
type statisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatisticsCache creates a Redis-backed statistics cache. Entries
// expire after ttl; there is no explicit invalidation.
func NewStatisticsCache(client *redis.Client, ttl time.Duration) adapter.StatisticsCache {
	return &statisticsCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached statistics, reporting a miss when the entry is
// absent or expired.
func (c *statisticsCache) Get(ctx context.Context) ([]*entity.CategoryStatistics, bool, error) {
	payload, err := c.client.Get(ctx, statisticsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var stats []*entity.CategoryStatistics
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false, err
	}
	return stats, true, nil
}

// Set stores the statistics until the TTL elapses.
func (c *statisticsCache) Set(ctx context.Context, stats []*entity.CategoryStatistics) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statisticsKey, payload, c.ttl).Err()
}
