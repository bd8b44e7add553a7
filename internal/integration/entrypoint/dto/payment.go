// Package dto contains request and response shapes for the HTTP surface.
package dto

import (
	"time"

	"github.com/payment-system/backend/internal/application/usecase/payment"
)

// CreatePaymentRequest is the body for payment creation. Amounts are
// accepted as JSON numbers and converted to decimals at the boundary.
type CreatePaymentRequest struct {
	SenderAccountID    int64   `json:"sender_account_id" binding:"required"`
	RecipientAccountID *int64  `json:"recipient_account_id"`
	CategoryID         int64   `json:"category_id" binding:"required"`
	StatusID           int64   `json:"status_id"`
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	Currency           string  `json:"currency"`
	Description        string  `json:"description" binding:"required"`
	Commission         float64 `json:"commission"`
}

// CreatePaymentResponse is returned after a successful creation.
type CreatePaymentResponse struct {
	PaymentID       int64  `json:"payment_id"`
	ReferenceNumber string `json:"reference_number"`
	StatusID        int64  `json:"status_id"`
}

// UpdatePaymentStatusRequest is the body for a status transition.
type UpdatePaymentStatusRequest struct {
	StatusID int64 `json:"status_id" binding:"required"`
}

// UpdatePaymentStatusResponse reports the resulting status.
type UpdatePaymentStatusResponse struct {
	StatusID int64 `json:"status_id"`
	Changed  bool  `json:"changed"`
}

// PaymentResponse is the HTTP view of a payment, carrying the joined
// display names alongside the raw ids.
type PaymentResponse struct {
	ID                 int64      `json:"id"`
	SenderAccountID    int64      `json:"sender_account_id"`
	RecipientAccountID *int64     `json:"recipient_account_id,omitempty"`
	CategoryID         int64      `json:"category_id"`
	CategoryName       string     `json:"category_name,omitempty"`
	StatusID           int64      `json:"status_id"`
	StatusName         string     `json:"status_name,omitempty"`
	Amount             string     `json:"amount"`
	Currency           string     `json:"currency"`
	Description        string     `json:"description"`
	PaymentDate        time.Time  `json:"payment_date"`
	CompletionDate     *time.Time `json:"completion_date,omitempty"`
	Commission         string     `json:"commission"`
	ReferenceNumber    string     `json:"reference_number"`
	SenderName         string     `json:"sender_name,omitempty"`
	RecipientName      *string    `json:"recipient_name,omitempty"`
}

// PaymentListResponse carries the listed payments, most recent first.
type PaymentListResponse struct {
	Payments []*PaymentResponse `json:"payments"`
}

// TotalResponse reports a summed amount for one user.
type TotalResponse struct {
	UserID int64  `json:"user_id"`
	Total  string `json:"total"`
}

// CategoryStatisticsResponse is one row of the per-category report.
type CategoryStatisticsResponse struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	PaymentCount int64  `json:"payment_count"`
	TotalAmount  string `json:"total_amount"`
}

// CategoryStatisticsListResponse carries the full report.
type CategoryStatisticsListResponse struct {
	Categories []*CategoryStatisticsResponse `json:"categories"`
	FromCache  bool                          `json:"from_cache"`
}

// NewPaymentResponse maps a use case output onto the HTTP shape.
// Decimal amounts are rendered as strings to avoid float rounding.
func NewPaymentResponse(p *payment.PaymentOutput) *PaymentResponse {
	return &PaymentResponse{
		ID:                 p.ID,
		SenderAccountID:    p.SenderAccountID,
		RecipientAccountID: p.RecipientAccountID,
		CategoryID:         p.CategoryID,
		CategoryName:       p.CategoryName,
		StatusID:           int64(p.StatusID),
		StatusName:         p.StatusName,
		Amount:             p.Amount.String(),
		Currency:           p.Currency,
		Description:        p.Description,
		PaymentDate:        p.PaymentDate,
		CompletionDate:     p.CompletionDate,
		Commission:         p.Commission.String(),
		ReferenceNumber:    p.ReferenceNumber,
		SenderName:         p.SenderName,
		RecipientName:      p.RecipientName,
	}
}

// NewPaymentResponses maps a slice of use case outputs.
func NewPaymentResponses(payments []*payment.PaymentOutput) []*PaymentResponse {
	responses := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, NewPaymentResponse(p))
	}
	return responses
}
