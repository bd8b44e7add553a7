// Package payment contains payment-related use cases.
package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/payment-system/backend/internal/domain/entity"
)

// PaymentOutput represents a payment returned by the use cases,
// including the display projection fields when the query populated them.
type PaymentOutput struct {
	ID                 int64
	SenderAccountID    int64
	RecipientAccountID *int64
	CategoryID         int64
	StatusID           entity.Status
	Amount             decimal.Decimal
	Currency           string
	Description        string
	PaymentDate        time.Time
	CompletionDate     *time.Time
	Commission         decimal.Decimal
	ReferenceNumber    string
	CategoryName       string
	StatusName         string
	SenderName         string
	RecipientName      *string
}

// newPaymentOutput maps the repository projection onto the output shape.
func newPaymentOutput(details *entity.PaymentDetails) *PaymentOutput {
	p := details.Payment
	return &PaymentOutput{
		ID:                 p.ID,
		SenderAccountID:    p.SenderAccountID,
		RecipientAccountID: p.RecipientAccountID,
		CategoryID:         p.CategoryID,
		StatusID:           p.StatusID,
		Amount:             p.Amount,
		Currency:           p.Currency,
		Description:        p.Description,
		PaymentDate:        p.PaymentDate,
		CompletionDate:     p.CompletionDate,
		Commission:         p.Commission,
		ReferenceNumber:    p.ReferenceNumber,
		CategoryName:       details.CategoryName,
		StatusName:         details.StatusName,
		SenderName:         details.SenderName,
		RecipientName:      details.RecipientName,
	}
}

func newPaymentOutputs(details []*entity.PaymentDetails) []*PaymentOutput {
	outputs := make([]*PaymentOutput, len(details))
	for i, d := range details {
		outputs[i] = newPaymentOutput(d)
	}
	return outputs
}
