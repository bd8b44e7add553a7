// Package model defines database models for persistence layer.
package model

// Reference tables consumed by the payment queries. They are migrated
// and seeded at startup but never mutated by the repositories.

// PaymentCategoryModel represents the payment_categories table.
type PaymentCategoryModel struct {
	ID   int64  `gorm:"column:category_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:category_name;type:varchar(100);uniqueIndex;not null"`
}

// TableName returns the table name for the PaymentCategoryModel.
func (PaymentCategoryModel) TableName() string {
	return "payment_categories"
}

// PaymentStatusModel represents the payment_statuses table.
type PaymentStatusModel struct {
	ID   int64  `gorm:"column:status_id;primaryKey"`
	Name string `gorm:"column:status_name;type:varchar(50);not null"`
}

// TableName returns the table name for the PaymentStatusModel.
func (PaymentStatusModel) TableName() string {
	return "payment_statuses"
}

// AccountModel represents the accounts table, read-only from this
// core's perspective.
type AccountModel struct {
	ID     int64 `gorm:"column:account_id;primaryKey;autoIncrement"`
	UserID int64 `gorm:"column:user_id;not null;index"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}
