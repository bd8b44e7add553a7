// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to payments that do not
// specify one.
const DefaultCurrency = "UAH"

// Payment represents a money transfer from a sender account to either a
// peer account or an external counterparty.
type Payment struct {
	ID              int64
	SenderAccountID int64
	// RecipientAccountID is nil for payments to an external or service
	// counterparty.
	RecipientAccountID *int64
	CategoryID         int64
	StatusID           Status
	Amount             decimal.Decimal
	Currency           string
	Description        string
	PaymentDate        time.Time
	CompletionDate     *time.Time
	Commission         decimal.Decimal
	// ReferenceNumber is assigned exactly once by the store at creation
	// and is immutable thereafter.
	ReferenceNumber string
}

// NewPayment creates a new pending Payment with default currency and
// zero commission. The store assigns ID, PaymentDate and
// ReferenceNumber on creation.
func NewPayment(
	senderAccountID int64,
	recipientAccountID *int64,
	categoryID int64,
	amount decimal.Decimal,
	description string,
) *Payment {
	return &Payment{
		SenderAccountID:    senderAccountID,
		RecipientAccountID: recipientAccountID,
		CategoryID:         categoryID,
		StatusID:           StatusPending,
		Amount:             amount,
		Currency:           DefaultCurrency,
		Description:        description,
		Commission:         decimal.Zero,
	}
}

// PaymentDetails is the read projection of a payment enriched with
// joined human-readable fields. The names are never persisted; narrower
// queries leave them unset.
type PaymentDetails struct {
	Payment      *Payment
	CategoryName string
	StatusName   string
	SenderName   string
	// RecipientName is nil when the payment has no recipient account.
	RecipientName *string
}

// CategoryStatistics aggregates completed payments for one category.
type CategoryStatistics struct {
	CategoryID   int64
	CategoryName string
	PaymentCount int64
	TotalAmount  decimal.Decimal
}
