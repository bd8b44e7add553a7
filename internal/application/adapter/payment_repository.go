// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/payment-system/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create persists a new payment. The store assigns the id, the
	// payment date and the reference number and writes them back onto
	// the entity.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment enriched with category, status and
	// sender/recipient display names.
	FindByID(ctx context.Context, id int64) (*entity.PaymentDetails, error)

	// FindAll retrieves all payments, most recent first.
	FindAll(ctx context.Context) ([]*entity.PaymentDetails, error)

	// FindByStatus retrieves payments at the given status, most recent first.
	FindByStatus(ctx context.Context, status entity.Status) ([]*entity.PaymentDetails, error)

	// FindByUser retrieves payments sent from accounts owned by the given
	// user (outgoing payments only), most recent first.
	FindByUser(ctx context.Context, userID int64) ([]*entity.PaymentDetails, error)

	// FindByAccount retrieves payments sent from the given account, most
	// recent first. Sender and recipient display names are left unset.
	FindByAccount(ctx context.Context, accountID int64) ([]*entity.PaymentDetails, error)

	// FindByCategory retrieves payments in the given category, most
	// recent first. Sender and recipient display names are left unset.
	FindByCategory(ctx context.Context, categoryID int64) ([]*entity.PaymentDetails, error)

	// UpdateStatus overwrites the payment status without lifecycle
	// validation. Returns whether a row was affected.
	UpdateStatus(ctx context.Context, id int64, status entity.Status) (bool, error)

	// Cancel moves the payment to the Cancelled status. Returns whether a
	// row was affected.
	Cancel(ctx context.Context, id int64) (bool, error)

	// Complete moves the payment to the Completed status and stamps the
	// completion date. Returns whether a row was affected.
	Complete(ctx context.Context, id int64) (bool, error)

	// TotalByUser sums the amounts of Completed payments sent by accounts
	// owned by the given user. Returns zero when there are none.
	TotalByUser(ctx context.Context, userID int64) (decimal.Decimal, error)

	// StatisticsByCategory returns count and summed amount of Completed
	// payments for every category, including categories with none,
	// ordered by summed amount descending then catalog order.
	StatisticsByCategory(ctx context.Context) ([]*entity.CategoryStatistics, error)

	// CountByStatus returns the number of payments at the given status.
	CountByStatus(ctx context.Context, status entity.Status) (int64, error)
}
