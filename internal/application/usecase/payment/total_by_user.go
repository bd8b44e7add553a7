// Package payment contains payment-related use cases.
package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/payment-system/backend/internal/application/adapter"
)

// TotalByUserOutput represents the completed total for one user.
type TotalByUserOutput struct {
	UserID int64
	Total  decimal.Decimal
}

// TotalByUserUseCase sums the completed payments sent by a user's accounts.
type TotalByUserUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewTotalByUserUseCase creates a new TotalByUserUseCase instance.
func NewTotalByUserUseCase(paymentRepo adapter.PaymentRepository) *TotalByUserUseCase {
	return &TotalByUserUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute returns the completed total, zero when there are no completed
// payments.
func (uc *TotalByUserUseCase) Execute(ctx context.Context, userID int64) (*TotalByUserOutput, error) {
	total, err := uc.paymentRepo.TotalByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &TotalByUserOutput{UserID: userID, Total: total}, nil
}
