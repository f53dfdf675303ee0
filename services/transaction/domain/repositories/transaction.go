package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/services/transaction/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// TransactionRepository is the persistence interface for transactions.
type TransactionRepository interface {
	Save(ctx context.Context, t *models.Transaction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)

	// FindByUserID returns a page of transactions, newest first, and the total count.
	FindByUserID(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Transaction, int, error)

	// FindSince returns the transactions recorded at or after since, oldest first.
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.Transaction, error)

	// Totals sums amounts per category over all of the user's transactions.
	Totals(ctx context.Context, userID uuid.UUID) (map[models.Category]decimal.Decimal, error)

	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
