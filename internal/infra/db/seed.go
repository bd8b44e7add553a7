// Package db provides database connection and management functionality.
package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/payment-system/backend/internal/domain/entity"
	"github.com/payment-system/backend/internal/integration/persistence/model"
)

// defaultCategories are created on first startup so payments can be
// categorized out of the box.
var defaultCategories = []string{
	"Utilities",
	"Transfer",
	"Shopping",
	"Subscriptions",
	"Other",
}

// Seed inserts the reference rows the payment queries join against.
// It is idempotent and safe to run on every startup.
func Seed(db *gorm.DB) error {
	statuses := []entity.Status{
		entity.StatusPending,
		entity.StatusProcessing,
		entity.StatusCompleted,
		entity.StatusCancelled,
		entity.StatusRejected,
	}
	for _, s := range statuses {
		row := model.PaymentStatusModel{ID: int64(s), Name: s.String()}
		if err := db.Where("status_id = ?", row.ID).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed payment status %d: %w", row.ID, err)
		}
	}

	for _, name := range defaultCategories {
		row := model.PaymentCategoryModel{Name: name}
		if err := db.Where("category_name = ?", name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed payment category %q: %w", name, err)
		}
	}

	return nil
}
