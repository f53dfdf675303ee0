package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/migrations/transaction"
	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/database"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/migrator"
	transactiondomain "github.com/ghuser/bizzy/services/transaction/domain"
	"github.com/ghuser/bizzy/services/transaction/domain/models"
	"github.com/ghuser/bizzy/services/transaction/domain/repositories"
)

// Integration tests: skipped unless DATABASE_URL is set.
func TestTransactionRepositoryIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	if err := migrator.RunMigrations(ctx, dsn, migrator.Source{Name: "transaction", Files: transaction.FS}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := database.NewPool(ctx, dsn, logger.Discard())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	repo := NewTransactionRepository(pool)
	userID := uuid.New()
	itemID := uuid.New()
	age := 31

	sale, err := models.NewTransaction(userID, business.Products, models.TransactionParams{
		Type: "Product Order", Category: "Income", ItemID: &itemID, ItemName: "Cement",
		Amount: decimal.RequireFromString("179.00"), Quantity: 2,
		Customer: models.Customer{Name: "Chipo", Phone: "0771234567", Age: &age},
	})
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}
	rent, err := models.NewTransaction(userID, business.Products, models.TransactionParams{
		Type: "Product Payment", Category: "Expense",
		Amount:   decimal.RequireFromString("50.25"),
		Customer: models.Customer{Name: "Landlord", Phone: "0770000000"},
	})
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}

	t.Run("Save and read back", func(t *testing.T) {
		for _, tx := range []*models.Transaction{sale, rent} {
			if err := repo.Save(ctx, tx); err != nil {
				t.Fatalf("Save: %v", err)
			}
		}
		got, err := repo.GetByID(ctx, userID, sale.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.ItemID == nil || *got.ItemID != itemID || got.Customer.Age == nil || *got.Customer.Age != 31 {
			t.Fatalf("nullable columns lost: %+v", got)
		}
		other, err := repo.GetByID(ctx, userID, rent.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if other.ItemID != nil || other.Customer.Age != nil {
			t.Fatalf("expected NULL item and age, got %+v", other)
		}
	})

	t.Run("Totals", func(t *testing.T) {
		totals, err := repo.Totals(ctx, userID)
		if err != nil {
			t.Fatalf("Totals: %v", err)
		}
		if !totals[models.Income].Equal(decimal.RequireFromString("179")) || !totals[models.Expense].Equal(decimal.RequireFromString("50.25")) {
			t.Fatalf("unexpected totals %v", totals)
		}
	})

	t.Run("FindSince and page", func(t *testing.T) {
		txns, err := repo.FindSince(ctx, userID, time.Now().Add(-time.Hour))
		if err != nil || len(txns) != 2 {
			t.Fatalf("FindSince = %d, %v", len(txns), err)
		}
		page, total, err := repo.FindByUserID(ctx, userID, repositories.QueryOpts{Limit: 1})
		if err != nil || total != 2 || len(page) != 1 {
			t.Fatalf("FindByUserID = %d/%d, %v", len(page), total, err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := repo.Delete(ctx, userID, rent.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, userID, rent.ID); !errors.Is(err, transactiondomain.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
