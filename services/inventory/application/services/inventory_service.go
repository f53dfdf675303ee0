package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/idseq"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/telemetry"
	inventorydomain "github.com/ghuser/bizzy/services/inventory/domain"
	"github.com/ghuser/bizzy/services/inventory/domain/models"
	"github.com/ghuser/bizzy/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/bizzy/services/inventory/domain/services"
)

// ItemCache is the read-through cache used by Get. *cache.RecordCache[CachedItem]
// implements it. Fill must not overwrite an entry or a recent Invalidate, so a
// Get that read the row before a stock change cannot cache the old quantity.
type ItemCache interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*CachedItem, error)
	Fill(ctx context.Context, userID, id uuid.UUID, v *CachedItem) (bool, error)
	Invalidate(ctx context.Context, userID, id uuid.UUID) error
}

// CachedItem is the cached form of an item.
type CachedItem struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  *int            `json:"quantity,omitempty"`
	Threshold *int            `json:"threshold,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// InventoryService manages a user's products or services. Codes come from the
// user's existing codes and the sector prefix (P or S).
type InventoryService struct {
	repo    repositories.ItemRepository
	sectors business.SectorLookup
	cache   ItemCache
	log     logger.Logger
}

// NewInventoryService returns an InventoryService. itemCache may be nil.
func NewInventoryService(repo repositories.ItemRepository, sectors business.SectorLookup, itemCache ItemCache, log logger.Logger) *InventoryService {
	return &InventoryService{repo: repo, sectors: sectors, cache: itemCache, log: log}
}

// Create assigns the next code in the user's collection and stores the item.
// A failure to read the sector or the existing codes wraps idseq.ErrScopeUnavailable.
func (s *InventoryService) Create(ctx context.Context, userID uuid.UUID, p models.ItemParams) (*models.Item, error) {
	sector, code, err := s.nextCode(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := models.NewItem(userID, sector, code, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save inventory item: %w", err)
	}
	telemetry.IdentifierGenerated(ctx, sector.CodePrefix())

	return item, nil
}

// PreviewNextCode returns the code Create would assign right now.
func (s *InventoryService) PreviewNextCode(ctx context.Context, userID uuid.UUID) (string, error) {
	_, code, err := s.nextCode(ctx, userID)
	return code, err
}

func (s *InventoryService) nextCode(ctx context.Context, userID uuid.UUID) (business.Sector, string, error) {
	sector, err := s.sectors.Sector(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", idseq.ErrScopeUnavailable, err)
	}
	codes, err := s.repo.ListCodes(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", idseq.ErrScopeUnavailable, err)
	}
	return sector, idseq.Next(sector.CodePrefix(), codes), nil
}

// Get retrieves an item using a read-through cache:
//  1. Check Redis first.
//  2. On a miss or cache error, query Postgres.
//  3. Fill the cache with the Postgres result unless a writer invalidated it
//     in the meantime.
func (s *InventoryService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID, id)
		if err == nil {
			return fromCache(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "inventory cache read failed", "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}

	if s.cache != nil {
		if _, err := s.cache.Fill(ctx, userID, id, toCache(item)); err != nil {
			s.log.WarnContext(ctx, "inventory cache write failed", "error", err)
		}
	}

	return item, nil
}

// List returns a page of the user's items plus the total count.
func (s *InventoryService) List(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	items, total, err := s.repo.FindByUserID(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory items: %w", err)
	}
	return items, total, nil
}

// Update changes name, price and stock levels. The code is never recomputed.
func (s *InventoryService) Update(ctx context.Context, userID, id uuid.UUID, p models.ItemParams) (*models.Item, error) {
	sector, err := s.sectors.Sector(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load sector: %w", err)
	}
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}

	before := item.Stock
	if err := item.Update(sector, p); err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidItem, err)
	}

	if err := s.repo.Update(ctx, item, domainsvcs.CrossedThreshold(before, item.Stock)); err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}
	s.evict(ctx, userID, id)
	return item, nil
}

// Delete removes an item. Its code is not handed out again while a higher code survives.
func (s *InventoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	s.evict(ctx, userID, id)
	return nil
}

// LowStock returns the user's products at or below their threshold.
func (s *InventoryService) LowStock(ctx context.Context, userID uuid.UUID) ([]*models.Item, error) {
	items, err := s.repo.FindLowStock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	return items, nil
}

// AdjustStock adds delta (negative for sales) to a product's quantity.
func (s *InventoryService) AdjustStock(ctx context.Context, userID, id uuid.UUID, delta int) (*models.Item, error) {
	item, err := s.repo.AdjustStock(ctx, userID, id, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	s.evict(ctx, userID, id)
	return item, nil
}

func (s *InventoryService) evict(ctx context.Context, userID, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID, id); err != nil {
		s.log.WarnContext(ctx, "inventory cache evict failed", "error", err)
	}
}

func toCache(item *models.Item) *CachedItem {
	c := &CachedItem{
		ID:        item.ID,
		UserID:    item.UserID,
		Code:      item.Code,
		Name:      item.Name,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.Stock != nil {
		q, t := item.Stock.Quantity, item.Stock.Threshold
		c.Quantity, c.Threshold = &q, &t
	}
	return c
}

func fromCache(c *CachedItem) *models.Item {
	item := &models.Item{
		ID:        c.ID,
		UserID:    c.UserID,
		Code:      c.Code,
		Name:      c.Name,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Quantity != nil && c.Threshold != nil {
		item.Stock = &models.Stock{Quantity: *c.Quantity, Threshold: *c.Threshold}
	}
	return item
}
