// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// CancelPaymentOutput reports the cancellation result. Changed is false
// when the payment was already cancelled.
type CancelPaymentOutput struct {
	Changed bool
}

// CancelPaymentUseCase cancels a payment, validating that its current
// status allows cancellation. Cancelling an already-cancelled payment
// succeeds without a write.
type CancelPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewCancelPaymentUseCase creates a new CancelPaymentUseCase instance.
func NewCancelPaymentUseCase(paymentRepo adapter.PaymentRepository) *CancelPaymentUseCase {
	return &CancelPaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the cancellation.
func (uc *CancelPaymentUseCase) Execute(ctx context.Context, id int64) (*CancelPaymentOutput, error) {
	details, err := uc.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current := details.Payment.StatusID

	if current == entity.StatusCancelled {
		return &CancelPaymentOutput{Changed: false}, nil
	}

	if !current.CanTransitionTo(entity.StatusCancelled) {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot cancel a payment in status %s", current),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	affected, err := uc.paymentRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel payment: %w", err)
	}
	if !affected {
		return nil, domainerror.ErrPaymentNotFound
	}

	return &CancelPaymentOutput{Changed: true}, nil
}
