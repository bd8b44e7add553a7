// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/payment-system/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID                 int64           `gorm:"column:payment_id;primaryKey;autoIncrement"`
	SenderAccountID    int64           `gorm:"column:sender_account_id;not null;index"`
	RecipientAccountID *int64          `gorm:"column:recipient_account_id;index"`
	CategoryID         int64           `gorm:"column:category_id;not null;index"`
	StatusID           int64           `gorm:"column:status_id;not null;index"`
	Amount             decimal.Decimal `gorm:"column:amount;type:decimal(15,2);not null"`
	Currency           string          `gorm:"column:currency;type:varchar(3);not null;default:'UAH'"`
	Description        string          `gorm:"column:description;type:varchar(255)"`
	PaymentDate        time.Time       `gorm:"column:payment_date;not null;index"`
	CompletionDate     *time.Time      `gorm:"column:completion_date"`
	Commission         decimal.Decimal `gorm:"column:commission;type:decimal(15,2);not null;default:0"`
	ReferenceNumber    string          `gorm:"column:reference_number;type:varchar(30);uniqueIndex;not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:                 m.ID,
		SenderAccountID:    m.SenderAccountID,
		RecipientAccountID: m.RecipientAccountID,
		CategoryID:         m.CategoryID,
		StatusID:           entity.Status(m.StatusID),
		Amount:             m.Amount,
		Currency:           m.Currency,
		Description:        m.Description,
		PaymentDate:        m.PaymentDate,
		CompletionDate:     m.CompletionDate,
		Commission:         m.Commission,
		ReferenceNumber:    m.ReferenceNumber,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:                 payment.ID,
		SenderAccountID:    payment.SenderAccountID,
		RecipientAccountID: payment.RecipientAccountID,
		CategoryID:         payment.CategoryID,
		StatusID:           int64(payment.StatusID),
		Amount:             payment.Amount,
		Currency:           payment.Currency,
		Description:        payment.Description,
		PaymentDate:        payment.PaymentDate,
		CompletionDate:     payment.CompletionDate,
		Commission:         payment.Commission,
		ReferenceNumber:    payment.ReferenceNumber,
	}
}
