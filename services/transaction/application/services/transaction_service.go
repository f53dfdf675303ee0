package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/logger"
	transactiondomain "github.com/ghuser/bizzy/services/transaction/domain"
	"github.com/ghuser/bizzy/services/transaction/domain/catalog"
	"github.com/ghuser/bizzy/services/transaction/domain/models"
	"github.com/ghuser/bizzy/services/transaction/domain/repositories"
	domainsvcs "github.com/ghuser/bizzy/services/transaction/domain/services"
)

// restoreTimeout bounds the stock restore that runs after a failed save.
const restoreTimeout = 10 * time.Second

// Inventory is what a transaction needs from the inventory context.
type Inventory interface {
	ItemName(ctx context.Context, userID, itemID uuid.UUID) (string, error)
	AdjustStock(ctx context.Context, userID, itemID uuid.UUID, delta int) error
}

// TransactionService records sales, payments and expenses. Product sales take
// stock out of inventory.
type TransactionService struct {
	repo      repositories.TransactionRepository
	sectors   business.SectorLookup
	inventory Inventory
	log       logger.Logger
	now       func() time.Time
}

// NewTransactionService returns a TransactionService.
func NewTransactionService(repo repositories.TransactionRepository, sectors business.SectorLookup, inventory Inventory, log logger.Logger) *TransactionService {
	return &TransactionService{repo: repo, sectors: sectors, inventory: inventory, log: log, now: time.Now}
}

// Create records a transaction. When it sells stock the item's quantity is
// reduced first and restored if the transaction cannot be stored.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, p models.TransactionParams) (*models.Transaction, error) {
	sector, err := s.sectors.Sector(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load sector: %w", err)
	}

	t, err := models.NewTransaction(userID, sector, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", transactiondomain.ErrInvalidTransaction, err)
	}
	if err := s.resolveItem(ctx, t); err != nil {
		return nil, err
	}

	sells := t.SellsStock()
	if sells {
		if err := s.inventory.AdjustStock(ctx, userID, *t.ItemID, -t.Quantity); err != nil {
			return nil, fmt.Errorf("take stock: %w", err)
		}
	}

	if err := s.repo.Save(ctx, t); err != nil {
		if sells {
			s.restoreStock(ctx, t)
		}
		return nil, fmt.Errorf("save transaction: %w", err)
	}
	return t, nil
}

// restoreStock puts back the quantity taken for t. The save usually fails
// because ctx was cancelled or timed out, so the restore runs detached from it.
func (s *TransactionService) restoreStock(ctx context.Context, t *models.Transaction) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	defer cancel()
	if err := s.inventory.AdjustStock(rctx, t.UserID, *t.ItemID, t.Quantity); err != nil {
		s.log.ErrorContext(rctx, "restore stock after failed transaction",
			"item_id", t.ItemID, "quantity", t.Quantity, "error", err)
	}
}

// Get returns one of the user's transactions.
func (s *TransactionService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List returns a page of transactions, newest first.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Transaction, int, error) {
	txns, total, err := s.repo.FindByUserID(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return txns, total, nil
}

// Update replaces the editable fields. Stock is not adjusted again.
func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, p models.TransactionParams) (*models.Transaction, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if err := t.Update(p); err != nil {
		return nil, fmt.Errorf("%w: %w", transactiondomain.ErrInvalidTransaction, err)
	}
	if err := s.resolveItem(ctx, t); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return t, nil
}

// Delete removes a transaction. Stock taken by it is not returned.
func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// Types lists the transaction types offered to the user's sector.
func (s *TransactionService) Types(ctx context.Context, userID uuid.UUID) ([]string, error) {
	sector, err := s.sectors.Sector(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load sector: %w", err)
	}
	return catalog.Default.Types(sector), nil
}

// Summary totals income and expense over all of the user's transactions.
func (s *TransactionService) Summary(ctx context.Context, userID uuid.UUID) (domainsvcs.Summary, error) {
	totals, err := s.repo.Totals(ctx, userID)
	if err != nil {
		return domainsvcs.Summary{}, fmt.Errorf("transaction summary: %w", err)
	}
	return domainsvcs.SummaryFromTotals(totals), nil
}

// Trend buckets income and expense over the given period ending now.
func (s *TransactionService) Trend(ctx context.Context, userID uuid.UUID, period domainsvcs.Period) ([]domainsvcs.Bucket, error) {
	now := s.now()
	buckets := domainsvcs.Buckets(period, now)
	txns, err := s.repo.FindSince(ctx, userID, buckets[0].Start)
	if err != nil {
		return nil, fmt.Errorf("transaction trend: %w", err)
	}
	return domainsvcs.Trend(period, txns, now), nil
}

func (s *TransactionService) resolveItem(ctx context.Context, t *models.Transaction) error {
	if t.ItemID == nil {
		return nil
	}
	name, err := s.inventory.ItemName(ctx, t.UserID, *t.ItemID)
	if err != nil {
		return fmt.Errorf("resolve item: %w", err)
	}
	t.ItemName = name
	return nil
}
