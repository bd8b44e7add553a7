package persistence

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/payment-system/backend/internal/domain/entity"
	"github.com/payment-system/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full
// schema. A single connection keeps every statement on the same
// in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.PaymentCategoryModel{},
		&model.PaymentStatusModel{},
		&model.PaymentModel{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// seedStatuses inserts the five lifecycle rows.
func seedStatuses(t *testing.T, db *gorm.DB) {
	t.Helper()
	for s := entity.StatusPending; s <= entity.StatusRejected; s++ {
		row := model.PaymentStatusModel{ID: int64(s), Name: s.String()}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed status %d: %v", s, err)
		}
	}
}

func seedUser(t *testing.T, db *gorm.DB, firstName, lastName, email string) int64 {
	t.Helper()
	row := model.UserModel{
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		PasswordHash:     "default_hash",
		RegistrationDate: time.Now().UTC(),
		IsActive:         true,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return row.ID
}

func seedAccount(t *testing.T, db *gorm.DB, userID int64) int64 {
	t.Helper()
	row := model.AccountModel{UserID: userID}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed account for user %d: %v", userID, err)
	}
	return row.ID
}

func seedCategory(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	row := model.PaymentCategoryModel{Name: name}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed category %s: %v", name, err)
	}
	return row.ID
}

// sequentialRefs hands out deterministic, collision-free reference
// numbers so tests never trip the unique index.
type sequentialRefs struct {
	n int
}

func (s *sequentialRefs) Generate() string {
	s.n++
	return fmt.Sprintf("PAY-20250101-000000-%03d", s.n)
}

// mustDecimal parses a decimal literal or fails the test.
func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}
