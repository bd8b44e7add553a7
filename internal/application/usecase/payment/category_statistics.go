// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"log/slog"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
)

// CategoryStatisticsOutput represents the per-category report of
// completed payments, ordered by summed amount descending.
type CategoryStatisticsOutput struct {
	Categories []*entity.CategoryStatistics
	FromCache  bool
}

// CategoryStatisticsUseCase serves the per-category report, going
// through the cache when one is configured.
type CategoryStatisticsUseCase struct {
	paymentRepo adapter.PaymentRepository
	cache       adapter.StatisticsCache // nil disables caching
}

// NewCategoryStatisticsUseCase creates a new CategoryStatisticsUseCase instance.
func NewCategoryStatisticsUseCase(paymentRepo adapter.PaymentRepository, cache adapter.StatisticsCache) *CategoryStatisticsUseCase {
	return &CategoryStatisticsUseCase{
		paymentRepo: paymentRepo,
		cache:       cache,
	}
}

// Execute returns the category statistics. Cache failures degrade to a
// direct query; they never fail the report.
func (uc *CategoryStatisticsUseCase) Execute(ctx context.Context) (*CategoryStatisticsOutput, error) {
	if uc.cache != nil {
		stats, hit, err := uc.cache.Get(ctx)
		if err != nil {
			slog.Warn("Statistics cache read failed", "error", err)
		} else if hit {
			return &CategoryStatisticsOutput{Categories: stats, FromCache: true}, nil
		}
	}

	stats, err := uc.paymentRepo.StatisticsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, stats); err != nil {
			slog.Warn("Statistics cache write failed", "error", err)
		}
	}

	return &CategoryStatisticsOutput{Categories: stats}, nil
}
