// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
	"github.com/payment-system/backend/internal/integration/persistence/model"
)

// detailSelect is the enriched projection query. The joined display
// names use || so it runs on both PostgreSQL and SQLite.
const detailSelect = `
	SELECT
		p.payment_id, p.sender_account_id, p.recipient_account_id,
		p.category_id, p.status_id, p.amount, p.currency, p.description,
		p.payment_date, p.completion_date, p.commission, p.reference_number,
		pc.category_name, ps.status_name,
		u1.first_name || ' ' || u1.last_name AS sender_name,
		u2.first_name || ' ' || u2.last_name AS recipient_name
	FROM payments p
	JOIN payment_categories pc ON p.category_id = pc.category_id
	JOIN payment_statuses ps ON p.status_id = ps.status_id
	JOIN accounts a1 ON p.sender_account_id = a1.account_id
	JOIN users u1 ON a1.user_id = u1.user_id
	LEFT JOIN accounts a2 ON p.recipient_account_id = a2.account_id
	LEFT JOIN users u2 ON a2.user_id = u2.user_id`

// reducedSelect omits the account and user joins; callers needing the
// display names should use FindByID.
const reducedSelect = `
	SELECT
		p.payment_id, p.sender_account_id, p.recipient_account_id,
		p.category_id, p.status_id, p.amount, p.currency, p.description,
		p.payment_date, p.completion_date, p.commission, p.reference_number,
		pc.category_name, ps.status_name
	FROM payments p
	JOIN payment_categories pc ON p.category_id = pc.category_id
	JOIN payment_statuses ps ON p.status_id = ps.status_id`

// paymentDetailRow scans one projection row. The name columns are
// pointers so that narrower queries, which omit them, and NULL
// recipients map to "not populated" rather than a failure.
type paymentDetailRow struct {
	PaymentID          int64           `gorm:"column:payment_id"`
	SenderAccountID    int64           `gorm:"column:sender_account_id"`
	RecipientAccountID *int64          `gorm:"column:recipient_account_id"`
	CategoryID         int64           `gorm:"column:category_id"`
	StatusID           int64           `gorm:"column:status_id"`
	Amount             decimal.Decimal `gorm:"column:amount"`
	Currency           string          `gorm:"column:currency"`
	Description        string          `gorm:"column:description"`
	PaymentDate        time.Time       `gorm:"column:payment_date"`
	CompletionDate     *time.Time      `gorm:"column:completion_date"`
	Commission         decimal.Decimal `gorm:"column:commission"`
	ReferenceNumber    string          `gorm:"column:reference_number"`
	CategoryName       string          `gorm:"column:category_name"`
	StatusName         string          `gorm:"column:status_name"`
	SenderName         *string         `gorm:"column:sender_name"`
	RecipientName      *string         `gorm:"column:recipient_name"`
}

// toDetails converts a scanned row into the domain read projection.
func (row *paymentDetailRow) toDetails() *entity.PaymentDetails {
	details := &entity.PaymentDetails{
		Payment: &entity.Payment{
			ID:                 row.PaymentID,
			SenderAccountID:    row.SenderAccountID,
			RecipientAccountID: row.RecipientAccountID,
			CategoryID:         row.CategoryID,
			StatusID:           entity.Status(row.StatusID),
			Amount:             row.Amount,
			Currency:           row.Currency,
			Description:        row.Description,
			PaymentDate:        row.PaymentDate,
			CompletionDate:     row.CompletionDate,
			Commission:         row.Commission,
			ReferenceNumber:    row.ReferenceNumber,
		},
		CategoryName:  row.CategoryName,
		StatusName:    row.StatusName,
		RecipientName: row.RecipientName,
	}
	if row.SenderName != nil {
		details.SenderName = *row.SenderName
	}
	return details
}

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db   *gorm.DB
	refs adapter.ReferenceGenerator
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB, refs adapter.ReferenceGenerator) adapter.PaymentRepository {
	return &paymentRepository{
		db:   db,
		refs: refs,
	}
}

// Create persists a new payment. The reference number and payment date
// are assigned here and written back onto the entity together with the
// store-assigned id.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	if paymentModel.Currency == "" {
		paymentModel.Currency = entity.DefaultCurrency
	}
	if paymentModel.PaymentDate.IsZero() {
		paymentModel.PaymentDate = time.Now().UTC()
	}
	paymentModel.ReferenceNumber = r.refs.Generate()

	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}

	payment.ID = paymentModel.ID
	payment.Currency = paymentModel.Currency
	payment.PaymentDate = paymentModel.PaymentDate
	payment.ReferenceNumber = paymentModel.ReferenceNumber
	return nil
}

// FindByID retrieves a payment enriched with category, status and
// sender/recipient display names.
func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.PaymentDetails, error) {
	var row paymentDetailRow
	result := r.db.WithContext(ctx).
		Raw(detailSelect+" WHERE p.payment_id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrPaymentNotFound
	}
	return row.toDetails(), nil
}

// FindAll retrieves all payments, most recent first.
func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.PaymentDetails, error) {
	return r.queryDetails(ctx, detailSelect+" ORDER BY p.payment_date DESC")
}

// FindByStatus retrieves payments at the given status, most recent first.
func (r *paymentRepository) FindByStatus(ctx context.Context, status entity.Status) ([]*entity.PaymentDetails, error) {
	return r.queryDetails(ctx,
		detailSelect+" WHERE p.status_id = ? ORDER BY p.payment_date DESC",
		int64(status))
}

// FindByUser retrieves payments sent from accounts owned by the given
// user, most recent first.
func (r *paymentRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.PaymentDetails, error) {
	return r.queryDetails(ctx,
		detailSelect+" WHERE a1.user_id = ? ORDER BY p.payment_date DESC",
		userID)
}

// FindByAccount retrieves payments sent from the given account with the
// reduced projection.
func (r *paymentRepository) FindByAccount(ctx context.Context, accountID int64) ([]*entity.PaymentDetails, error) {
	return r.queryDetails(ctx,
		reducedSelect+" WHERE p.sender_account_id = ? ORDER BY p.payment_date DESC",
		accountID)
}

// FindByCategory retrieves payments in the given category with the
// reduced projection.
func (r *paymentRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*entity.PaymentDetails, error) {
	return r.queryDetails(ctx,
		reducedSelect+" WHERE p.category_id = ? ORDER BY p.payment_date DESC",
		categoryID)
}

// UpdateStatus overwrites the payment status. Lifecycle validation is
// the caller's responsibility; the use case layer enforces it.
func (r *paymentRepository) UpdateStatus(ctx context.Context, id int64, status entity.Status) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", id).
		Update("status_id", int64(status))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Cancel moves the payment to the Cancelled status.
func (r *paymentRepository) Cancel(ctx context.Context, id int64) (bool, error) {
	return r.UpdateStatus(ctx, id, entity.StatusCancelled)
}

// Complete moves the payment to the Completed status and stamps the
// completion date in the same statement.
func (r *paymentRepository) Complete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", id).
		Updates(map[string]interface{}{
			"status_id":       int64(entity.StatusCompleted),
			"completion_date": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// TotalByUser sums the amounts of Completed payments sent by accounts
// owned by the given user.
func (r *paymentRepository) TotalByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	result := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(p.amount), 0) AS total
			FROM payments p
			JOIN accounts a ON p.sender_account_id = a.account_id
			WHERE a.user_id = ? AND p.status_id = ?`,
			userID, int64(entity.StatusCompleted)).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return row.Total, nil
}

// StatisticsByCategory returns count and summed amount of Completed
// payments for every category, including categories with none.
func (r *paymentRepository) StatisticsByCategory(ctx context.Context) ([]*entity.CategoryStatistics, error) {
	var rows []struct {
		CategoryID   int64           `gorm:"column:category_id"`
		CategoryName string          `gorm:"column:category_name"`
		PaymentCount int64           `gorm:"column:payment_count"`
		TotalAmount  decimal.Decimal `gorm:"column:total_amount"`
	}
	result := r.db.WithContext(ctx).
		Raw(`
			SELECT
				pc.category_id,
				pc.category_name,
				COUNT(p.payment_id) AS payment_count,
				COALESCE(SUM(p.amount), 0) AS total_amount
			FROM payment_categories pc
			LEFT JOIN payments p
				ON pc.category_id = p.category_id AND p.status_id = ?
			GROUP BY pc.category_id, pc.category_name
			ORDER BY total_amount DESC, pc.category_id ASC`,
			int64(entity.StatusCompleted)).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	stats := make([]*entity.CategoryStatistics, len(rows))
	for i, row := range rows {
		stats[i] = &entity.CategoryStatistics{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			PaymentCount: row.PaymentCount,
			TotalAmount:  row.TotalAmount,
		}
	}
	return stats, nil
}

// CountByStatus returns the number of payments at the given status.
func (r *paymentRepository) CountByStatus(ctx context.Context, status entity.Status) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("status_id = ?", int64(status)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// queryDetails runs a projection query and maps every row.
func (r *paymentRepository) queryDetails(ctx context.Context, query string, args ...interface{}) ([]*entity.PaymentDetails, error) {
	var rows []paymentDetailRow
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	details := make([]*entity.PaymentDetails, len(rows))
	for i := range rows {
		details[i] = rows[i].toDetails()
	}
	return details, nil
}
