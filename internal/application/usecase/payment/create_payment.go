// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// CreatePaymentInput represents the input for payment creation.
type CreatePaymentInput struct {
	SenderAccountID    int64
	RecipientAccountID *int64
	CategoryID         int64
	StatusID           entity.Status // zero value defaults to Pending
	Amount             decimal.Decimal
	Currency           string // empty defaults to UAH
	Description        string
	Commission         decimal.Decimal
}

// CreatePaymentOutput represents the output of payment creation.
type CreatePaymentOutput struct {
	PaymentID       int64
	ReferenceNumber string
	StatusID        entity.Status
}

// CreatePaymentUseCase handles payment creation logic.
type CreatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(paymentRepo adapter.PaymentRepository) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the payment creation.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error) {
	if input.SenderAccountID <= 0 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeMissingSenderAccount,
			"sender account is required",
			domainerror.ErrMissingSenderAccount,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	if input.Description == "" {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}

	status := input.StatusID
	if status == 0 {
		status = entity.StatusPending
	}
	if !status.Valid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeUnknownStatus,
			fmt.Sprintf("status %d is not part of the lifecycle", status),
			domainerror.ErrUnknownStatus,
		)
	}

	payment := entity.NewPayment(
		input.SenderAccountID,
		input.RecipientAccountID,
		input.CategoryID,
		input.Amount,
		input.Description,
	)
	payment.StatusID = status
	if input.Currency != "" {
		payment.Currency = input.Currency
	}
	if !input.Commission.IsZero() {
		payment.Commission = input.Commission
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &CreatePaymentOutput{
		PaymentID:       payment.ID,
		ReferenceNumber: payment.ReferenceNumber,
		StatusID:        payment.StatusID,
	}, nil
}
