// Package payment contains payment-related use cases.
package payment

import (
	"context"

	"github.com/payment-system/backend/internal/application/adapter"
)

// GetPaymentUseCase retrieves a single payment with its display projection.
type GetPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewGetPaymentUseCase creates a new GetPaymentUseCase instance.
func NewGetPaymentUseCase(paymentRepo adapter.PaymentRepository) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute retrieves the payment by id.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, id int64) (*PaymentOutput, error) {
	details, err := uc.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newPaymentOutput(details), nil
}
