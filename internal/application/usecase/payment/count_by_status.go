// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// CountByStatusOutput represents the payment count at one status.
type CountByStatusOutput struct {
	StatusID entity.Status
	Count    int64
}

// CountByStatusUseCase counts payments at a given lifecycle status.
type CountByStatusUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewCountByStatusUseCase creates a new CountByStatusUseCase instance.
func NewCountByStatusUseCase(paymentRepo adapter.PaymentRepository) *CountByStatusUseCase {
	return &CountByStatusUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute returns the count, zero when no payments are at the status.
func (uc *CountByStatusUseCase) Execute(ctx context.Context, status entity.Status) (*CountByStatusOutput, error) {
	if !status.Valid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeUnknownStatus,
			fmt.Sprintf("status %d is not part of the lifecycle", status),
			domainerror.ErrUnknownStatus,
		)
	}

	count, err := uc.paymentRepo.CountByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return &CountByStatusOutput{StatusID: status, Count: count}, nil
}
