// Package payment contains payment-related use cases.
package payment

import (
	"context"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
)

// ListPaymentsInput selects at most one filter; with none set, all
// payments are returned.
type ListPaymentsInput struct {
	Status     *entity.Status
	UserID     *int64
	AccountID  *int64
	CategoryID *int64
}

// ListPaymentsOutput represents the listed payments, most recent first.
type ListPaymentsOutput struct {
	Payments []*PaymentOutput
}

// ListPaymentsUseCase handles payment listing logic.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute lists payments according to the selected filter.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	var (
		details []*entity.PaymentDetails
		err     error
	)

	switch {
	case input.Status != nil:
		details, err = uc.paymentRepo.FindByStatus(ctx, *input.Status)
	case input.UserID != nil:
		details, err = uc.paymentRepo.FindByUser(ctx, *input.UserID)
	case input.AccountID != nil:
		details, err = uc.paymentRepo.FindByAccount(ctx, *input.AccountID)
	case input.CategoryID != nil:
		details, err = uc.paymentRepo.FindByCategory(ctx, *input.CategoryID)
	default:
		details, err = uc.paymentRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &ListPaymentsOutput{
		Payments: newPaymentOutputs(details),
	}, nil
}
