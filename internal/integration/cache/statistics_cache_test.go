package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/payment-system/backend/internal/domain/entity"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *statisticsCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewStatisticsCache(client, ttl).(*statisticsCache)
}

func TestStatisticsCacheRoundTrip(t *testing.T) {
	_, c := newTestCache(t, time.Minute)
	ctx := context.Background()

	stats := []*entity.CategoryStatistics{
		{CategoryID: 1, CategoryName: "Utilities", PaymentCount: 3, TotalAmount: decimal.RequireFromString("150.75")},
		{CategoryID: 2, CategoryName: "Transfer", PaymentCount: 0, TotalAmount: decimal.Zero},
	}

	if err := c.Set(ctx, stats); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, hit, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].CategoryName != "Utilities" || got[0].PaymentCount != 3 {
		t.Errorf("unexpected first row %+v", got[0])
	}
	if !got[0].TotalAmount.Equal(decimal.RequireFromString("150.75")) {
		t.Errorf("unexpected total %s", got[0].TotalAmount)
	}
}

func TestStatisticsCacheMiss(t *testing.T) {
	_, c := newTestCache(t, time.Minute)

	_, hit, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if hit {
		t.Error("expected a miss on an empty cache")
	}
}

func TestStatisticsCacheExpiry(t *testing.T) {
	mr, c := newTestCache(t, time.Minute)
	ctx := context.Background()

	stats := []*entity.CategoryStatistics{
		{CategoryID: 1, CategoryName: "Utilities", PaymentCount: 1, TotalAmount: decimal.NewFromInt(10)},
	}
	if err := c.Set(ctx, stats); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, hit, err := c.Get(ctx)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if hit {
		t.Error("expected a miss after the TTL elapsed")
	}
}
