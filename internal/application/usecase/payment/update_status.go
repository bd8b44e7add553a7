// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// UpdatePaymentStatusInput represents a requested lifecycle transition.
type UpdatePaymentStatusInput struct {
	PaymentID int64
	NewStatus entity.Status
}

// UpdatePaymentStatusOutput reports the resulting status. Changed is
// false when the payment was already at the requested status.
type UpdatePaymentStatusOutput struct {
	StatusID entity.Status
	Changed  bool
}

// UpdatePaymentStatusUseCase validates the transition against the
// status lifecycle before persisting it. The repository write itself is
// unconditional; this is the only place the lifecycle is enforced.
type UpdatePaymentStatusUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewUpdatePaymentStatusUseCase creates a new UpdatePaymentStatusUseCase instance.
func NewUpdatePaymentStatusUseCase(paymentRepo adapter.PaymentRepository) *UpdatePaymentStatusUseCase {
	return &UpdatePaymentStatusUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the status transition.
func (uc *UpdatePaymentStatusUseCase) Execute(ctx context.Context, input UpdatePaymentStatusInput) (*UpdatePaymentStatusOutput, error) {
	if !input.NewStatus.Valid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeUnknownStatus,
			fmt.Sprintf("status %d is not part of the lifecycle", input.NewStatus),
			domainerror.ErrUnknownStatus,
		)
	}

	details, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	current := details.Payment.StatusID

	// Re-requesting the current status is an idempotent no-op.
	if current == input.NewStatus {
		return &UpdatePaymentStatusOutput{StatusID: current, Changed: false}, nil
	}

	if !current.CanTransitionTo(input.NewStatus) {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot move payment from %s to %s", current, input.NewStatus),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	var affected bool
	if input.NewStatus == entity.StatusCompleted {
		// Completion also stamps the completion date.
		affected, err = uc.paymentRepo.Complete(ctx, input.PaymentID)
	} else {
		affected, err = uc.paymentRepo.UpdateStatus(ctx, input.PaymentID, input.NewStatus)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	if !affected {
		return nil, domainerror.ErrPaymentNotFound
	}

	return &UpdatePaymentStatusOutput{StatusID: input.NewStatus, Changed: true}, nil
}
