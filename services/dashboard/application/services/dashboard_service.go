package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	inventorymodels "github.com/ghuser/bizzy/services/inventory/domain/models"
	taskdomainsvcs "github.com/ghuser/bizzy/services/task/domain/services"
	txdomainsvcs "github.com/ghuser/bizzy/services/transaction/domain/services"
)

// TaskSource summarises a user's tasks.
type TaskSource interface {
	Summary(ctx context.Context, userID uuid.UUID) (taskdomainsvcs.Summary, error)
}

// FinanceSource totals a user's transactions.
type FinanceSource interface {
	Summary(ctx context.Context, userID uuid.UUID) (txdomainsvcs.Summary, error)
}

// StockSource lists a user's products at or below their threshold.
type StockSource interface {
	LowStock(ctx context.Context, userID uuid.UUID) ([]*inventorymodels.Item, error)
}

// Snapshot is the home screen's view of one business.
type Snapshot struct {
	Tasks    taskdomainsvcs.Summary
	Finance  txdomainsvcs.Summary
	LowStock []*inventorymodels.Item
}

// DashboardService assembles snapshots from the other contexts.
type DashboardService struct {
	tasks   TaskSource
	finance FinanceSource
	stock   StockSource
}

// NewDashboardService returns a DashboardService.
func NewDashboardService(tasks TaskSource, finance FinanceSource, stock StockSource) *DashboardService {
	return &DashboardService{tasks: tasks, finance: finance, stock: stock}
}

// Snapshot loads the three summaries concurrently. The first failure cancels
// the others and is returned.
func (s *DashboardService) Snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum, err := s.tasks.Summary(gctx, userID)
		if err != nil {
			return fmt.Errorf("dashboard tasks: %w", err)
		}
		snap.Tasks = sum
		return nil
	})
	g.Go(func() error {
		sum, err := s.finance.Summary(gctx, userID)
		if err != nil {
			return fmt.Errorf("dashboard finance: %w", err)
		}
		snap.Finance = sum
		return nil
	})
	g.Go(func() error {
		items, err := s.stock.LowStock(gctx, userID)
		if err != nil {
			return fmt.Errorf("dashboard stock: %w", err)
		}
		snap.LowStock = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
