package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// paymentFixture wires the schema, a couple of users with accounts and
// two categories so individual tests only add payments.
type paymentFixture struct {
	db          *gorm.DB
	olenaID     int64
	ivanID      int64
	olenaAcct   int64
	ivanAcct    int64
	utilitiesID int64
	transferID  int64
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	db := newTestDB(t)
	seedStatuses(t, db)

	f := &paymentFixture{db: db}
	f.olenaID = seedUser(t, db, "Olena", "Kovalenko", "olena@example.com")
	f.ivanID = seedUser(t, db, "Ivan", "Bondar", "ivan@example.com")
	f.olenaAcct = seedAccount(t, db, f.olenaID)
	f.ivanAcct = seedAccount(t, db, f.ivanID)
	f.utilitiesID = seedCategory(t, db, "Utilities")
	f.transferID = seedCategory(t, db, "Transfer")
	return f
}

func (f *paymentFixture) createPayment(t *testing.T, repo adapter.PaymentRepository, amount string, categoryID int64, recipient *int64, date time.Time) *entity.Payment {
	t.Helper()
	p := entity.NewPayment(f.olenaAcct, recipient, categoryID, mustDecimal(t, amount), "test payment")
	p.PaymentDate = date
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return p
}

func TestPaymentRepositoryCreate(t *testing.T) {
	f := newPaymentFixture(t)
	repo := NewPaymentRepository(f.db, &sequentialRefs{})
	ctx := context.Background()

	t.Run("assigns id, reference and defaults", func(t *testing.T) {
		p := entity.NewPayment(f.olenaAcct, nil, f.utilitiesID, mustDecimal(t, "150.75"), "electricity bill")
		p.Currency = ""

		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if p.ID == 0 {
			t.Error("expected store-assigned id")
		}
		if p.ReferenceNumber != "PAY-20250101-000000-001" {
			t.Errorf("unexpected reference %q", p.ReferenceNumber)
		}
		if p.Currency != entity.DefaultCurrency {
			t.Errorf("expected default currency, got %q", p.Currency)
		}
		if p.PaymentDate.IsZero() {
			t.Error("expected payment date to be set")
		}
	})

	t.Run("keeps an explicit payment date", func(t *testing.T) {
		date := time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
		p := entity.NewPayment(f.olenaAcct, nil, f.utilitiesID, mustDecimal(t, "10.00"), "water bill")
		p.PaymentDate = date

		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if !p.PaymentDate.Equal(date) {
			t.Errorf("payment date was overwritten: %v", p.PaymentDate)
		}
	})

	t.Run("reference collision surfaces as an error", func(t *testing.T) {
		stuck := &sequentialRefs{n: 500}
		stuckRepo := NewPaymentRepository(f.db, stuck)

		first := entity.NewPayment(f.olenaAcct, nil, f.utilitiesID, mustDecimal(t, "1.00"), "first")
		if err := stuckRepo.Create(ctx, first); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		stuck.n = 500 // replay the same reference
		second := entity.NewPayment(f.olenaAcct, nil, f.utilitiesID, mustDecimal(t, "2.00"), "second")
		if err := stuckRepo.Create(ctx, second); err == nil {
			t.Error("expected unique index violation for duplicate reference")
		}
	})
}

func TestPaymentRepositoryFindByID(t *testing.T) {
	f := newPaymentFixture(t)
	repo := NewPaymentRepository(f.db, &sequentialRefs{})
	ctx := context.Background()

	now := time.Now().UTC()
	peer := f.createPayment(t, repo, "250.00", f.transferID, &f.ivanAcct, now)
	external := f.createPayment(t, repo, "99.99", f.utilitiesID, nil, now)

	t.Run("populates joined display names", func(t *testing.T) {
		details, err := repo.FindByID(ctx, peer.ID)
		if err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
		if details.CategoryName != "Transfer" {
			t.Errorf("unexpected category name %q", details.CategoryName)
		}
		if details.StatusName != "Pending" {
			t.Errorf("unexpected status name %q", details.StatusName)
		}
		if details.SenderName != "Olena Kovalenko" {
			t.Errorf("unexpected sender name %q", details.SenderName)
		}
		if details.RecipientName == nil || *details.RecipientName != "Ivan Bondar" {
			t.Errorf("unexpected recipient name %v", details.RecipientName)
		}
		if !details.Payment.Amount.Equal(mustDecimal(t, "250.00")) {
			t.Errorf("unexpected amount %s", details.Payment.Amount)
		}
	})

	t.Run("external payment has no recipient name", func(t *testing.T) {
		details, err := repo.FindByID(ctx, external.ID)
		if err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
		if details.Payment.RecipientAccountID != nil {
			t.Error("expected nil recipient account")
		}
		if details.RecipientName != nil {
			t.Errorf("expected nil recipient name, got %q", *details.RecipientName)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		if !errors.Is(err, domainerror.ErrPaymentNotFound) {
			t.Errorf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentRepositoryListings(t *testing.T) {
	f := newPaymentFixture(t)
	repo := NewPaymentRepository(f.db, &sequentialRefs{})
	ctx := context.Background()

	base := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	oldest := f.createPayment(t, repo, "10.00", f.utilitiesID, nil, base)
	middle := f.createPayment(t, repo, "20.00", f.transferID, &f.ivanAcct, base.Add(24*time.Hour))
	newest := f.createPayment(t, repo, "30.00", f.utilitiesID, nil, base.Add(48*time.Hour))

	// One payment from Ivan's account so user filters have contrast.
	ivanPayment := entity.NewPayment(f.ivanAcct, nil, f.transferID, mustDecimal(t, "5.00"), "ivan payment")
	ivanPayment.PaymentDate = base.Add(12 * time.Hour)
	if err := repo.Create(ctx, ivanPayment); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	t.Run("find all is most recent first", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("FindAll returned error: %v", err)
		}
		if len(all) != 4 {
			t.Fatalf("expected 4 payments, got %d", len(all))
		}
		if all[0].Payment.ID != newest.ID || all[3].Payment.ID != oldest.ID {
			t.Error("expected payments ordered by payment date descending")
		}
	})

	t.Run("find by status", func(t *testing.T) {
		if _, err := repo.UpdateStatus(ctx, middle.ID, entity.StatusProcessing); err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}

		processing, err := repo.FindByStatus(ctx, entity.StatusProcessing)
		if err != nil {
			t.Fatalf("FindByStatus returned error: %v", err)
		}
		if len(processing) != 1 || processing[0].Payment.ID != middle.ID {
			t.Errorf("unexpected processing payments: %d", len(processing))
		}
	})

	t.Run("find by user covers all the user's accounts", func(t *testing.T) {
		olenas, err := repo.FindByUser(ctx, f.olenaID)
		if err != nil {
			t.Fatalf("FindByUser returned error: %v", err)
		}
		if len(olenas) != 3 {
			t.Fatalf("expected 3 payments for Olena, got %d", len(olenas))
		}
		for _, d := range olenas {
			if d.SenderName != "Olena Kovalenko" {
				t.Errorf("unexpected sender %q", d.SenderName)
			}
		}
	})

	t.Run("find by account uses the reduced projection", func(t *testing.T) {
		ivans, err := repo.FindByAccount(ctx, f.ivanAcct)
		if err != nil {
			t.Fatalf("FindByAccount returned error: %v", err)
		}
		if len(ivans) != 1 || ivans[0].Payment.ID != ivanPayment.ID {
			t.Fatalf("unexpected payments for account: %d", len(ivans))
		}
		if ivans[0].SenderName != "" {
			t.Errorf("reduced projection should not populate sender name, got %q", ivans[0].SenderName)
		}
		if ivans[0].CategoryName != "Transfer" {
			t.Errorf("reduced projection keeps category name, got %q", ivans[0].CategoryName)
		}
	})

	t.Run("find by category", func(t *testing.T) {
		utilities, err := repo.FindByCategory(ctx, f.utilitiesID)
		if err != nil {
			t.Fatalf("FindByCategory returned error: %v", err)
		}
		if len(utilities) != 2 {
			t.Fatalf("expected 2 utilities payments, got %d", len(utilities))
		}
		if utilities[0].Payment.ID != newest.ID {
			t.Error("expected most recent utilities payment first")
		}
	})
}

func TestPaymentRepositoryStatusWrites(t *testing.T) {
	f := newPaymentFixture(t)
	repo := NewPaymentRepository(f.db, &sequentialRefs{})
	ctx := context.Background()

	p := f.createPayment(t, repo, "100.00", f.utilitiesID, nil, time.Now().UTC())

	t.Run("update status", func(t *testing.T) {
		affected, err := repo.UpdateStatus(ctx, p.ID, entity.StatusProcessing)
		if err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
		if !affected {
			t.Fatal("expected a row to be affected")
		}

		details, err := repo.FindByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
		if details.Payment.StatusID != entity.StatusProcessing {
			t.Errorf("unexpected status %d", details.Payment.StatusID)
		}
	})

	t.Run("complete stamps the completion date", func(t *testing.T) {
		affected, err := repo.Complete(ctx, p.ID)
		if err != nil {
			t.Fatalf("Complete returned error: %v", err)
		}
		if !affected {
			t.Fatal("expected a row to be affected")
		}

		details, err := repo.FindByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
		if details.Payment.StatusID != entity.StatusCompleted {
			t.Errorf("unexpected status %d", details.Payment.StatusID)
		}
		if details.Payment.CompletionDate == nil {
			t.Error("expected completion date to be stamped")
		}
	})

	t.Run("cancel", func(t *testing.T) {
		other := f.createPayment(t, repo, "5.00", f.utilitiesID, nil, time.Now().UTC())

		affected, err := repo.Cancel(ctx, other.ID)
		if err != nil {
			t.Fatalf("Cancel returned error: %v", err)
		}
		if !affected {
			t.Fatal("expected a row to be affected")
		}

		details, err := repo.FindByID(ctx, other.ID)
		if err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
		if details.Payment.StatusID != entity.StatusCancelled {
			t.Errorf("unexpected status %d", details.Payment.StatusID)
		}
	})

	t.Run("missing payment affects no rows", func(t *testing.T) {
		affected, err := repo.UpdateStatus(ctx, 9999, entity.StatusProcessing)
		if err != nil {
			t.Fatalf("UpdateStatus returned error: %v", err)
		}
		if affected {
			t.Error("expected no rows affected for missing payment")
		}
	})
}

func TestPaymentRepositoryTotalByUser(t *testing.T) {
	f := newPaymentFixture(t)
	repo := NewPaymentRepository(f.db, &sequentialRefs{})
	ctx := context.Background()

	now := time.Now().UTC()
	completed1 := f.createPayment(t, repo, "100.50", f.utilitiesID, nil, now)
	completed2 := f.createPayment(t, repo, "49.50", f.transferID, &f.ivanAcct, now)
	f.createPayment(t, repo, "999.99", f.utilitiesID, nil, now) // stays Pending

	for _, p := range []*entity.Payment{completed1, completed2} {
		if _, err := repo.Complete(ctx, p.ID); err != nil {
			t.Fatalf("Complete returned error: %v", err)
		}
	}

	t.Run("sums completed payments only", func(t *testing.T) {
		total, err := repo.TotalByUser(ctx, f.olenaID)
		if err != nil {
			t.Fatalf("TotalByUser returned error: %v", err)
		}
		if !total.Equal(mustDecimal(t, "150.00")) {
			t.Errorf("expected total 150.00, got %s", total)
		}
	})

	t.Run("zero when the user has no completed payments", func(t *testing.T) {
		total, err := repo.TotalByUser(ctx, f.ivanID)
		if err != nil {
			t.Fatalf("TotalByUser returned error: %v", err)
		}
		if !total.Equal(decimal.Zero) {
			t.Errorf("expected zero total, got %s", total)
		}
	})
}

func TestPaymentRepositoryStatisticsByCategory(t *testing.T) {
	f := newPaymentFixture(t)
	repo := NewPaymentRepository(f.db, &sequentialRefs{})
	ctx := context.Background()

	emptyID := seedCategory(t, f.db, "Subscriptions")

	now := time.Now().UTC()
	big := f.createPayment(t, repo, "300.00", f.transferID, &f.ivanAcct, now)
	small1 := f.createPayment(t, repo, "40.00", f.utilitiesID, nil, now)
	small2 := f.createPayment(t, repo, "60.00", f.utilitiesID, nil, now)
	f.createPayment(t, repo, "500.00", f.utilitiesID, nil, now) // stays Pending

	for _, p := range []*entity.Payment{big, small1, small2} {
		if _, err := repo.Complete(ctx, p.ID); err != nil {
			t.Fatalf("Complete returned error: %v", err)
		}
	}

	stats, err := repo.StatisticsByCategory(ctx)
	if err != nil {
		t.Fatalf("StatisticsByCategory returned error: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(stats))
	}

	t.Run("ordered by total descending", func(t *testing.T) {
		if stats[0].CategoryID != f.transferID || !stats[0].TotalAmount.Equal(mustDecimal(t, "300.00")) {
			t.Errorf("unexpected first row: %+v", stats[0])
		}
		if stats[1].CategoryID != f.utilitiesID || !stats[1].TotalAmount.Equal(mustDecimal(t, "100.00")) {
			t.Errorf("unexpected second row: %+v", stats[1])
		}
		if stats[1].PaymentCount != 2 {
			t.Errorf("expected 2 completed utilities payments, got %d", stats[1].PaymentCount)
		}
	})

	t.Run("categories without completed payments appear with zeros", func(t *testing.T) {
		last := stats[2]
		if last.CategoryID != emptyID {
			t.Fatalf("expected empty category last, got %d", last.CategoryID)
		}
		if last.PaymentCount != 0 {
			t.Errorf("expected zero count, got %d", last.PaymentCount)
		}
		if !last.TotalAmount.Equal(decimal.Zero) {
			t.Errorf("expected zero total, got %s", last.TotalAmount)
		}
	})
}

func TestDeactivatingUserKeepsPayments(t *testing.T) {
	f := newPaymentFixture(t)
	payments := NewPaymentRepository(f.db, &sequentialRefs{})
	users := NewUserRepository(f.db)
	ctx := context.Background()

	p := f.createPayment(t, payments, "75.00", f.utilitiesID, nil, time.Now().UTC())
	if _, err := payments.Complete(ctx, p.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	if _, err := users.Deactivate(ctx, f.olenaID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	details, err := payments.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !details.Payment.Amount.Equal(mustDecimal(t, "75.00")) {
		t.Errorf("payment amount changed: %s", details.Payment.Amount)
	}
	if details.Payment.StatusID != entity.StatusCompleted {
		t.Errorf("payment status changed: %d", details.Payment.StatusID)
	}

	total, err := payments.TotalByUser(ctx, f.olenaID)
	if err != nil {
		t.Fatalf("TotalByUser returned error: %v", err)
	}
	if !total.Equal(mustDecimal(t, "75.00")) {
		t.Errorf("completed total changed after deactivation: %s", total)
	}
}

func TestPaymentRepositoryCountByStatus(t *testing.T) {
	f := newPaymentFixture(t)
	repo := NewPaymentRepository(f.db, &sequentialRefs{})
	ctx := context.Background()

	now := time.Now().UTC()
	f.createPayment(t, repo, "10.00", f.utilitiesID, nil, now)
	f.createPayment(t, repo, "20.00", f.utilitiesID, nil, now)
	done := f.createPayment(t, repo, "30.00", f.utilitiesID, nil, now)
	if _, err := repo.Complete(ctx, done.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	pending, err := repo.CountByStatus(ctx, entity.StatusPending)
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	if pending != 2 {
		t.Errorf("expected 2 pending payments, got %d", pending)
	}

	rejected, err := repo.CountByStatus(ctx, entity.StatusRejected)
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	if rejected != 0 {
		t.Errorf("expected 0 rejected payments, got %d", rejected)
	}
}
