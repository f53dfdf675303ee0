package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence interface for inventory items.
// Every method is scoped to one user.
type ItemRepository interface {
	// Save inserts a new item and publishes ItemCreatedEvent, plus LowStockEvent
	// when the item starts out low. Returns ErrItemAlreadyExists when the code is taken.
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Item, error)

	// FindByUserID returns a page of items ordered by code and the total count.
	FindByUserID(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Item, int, error)

	// ListCodes returns the codes of every item the user currently holds.
	ListCodes(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Update persists the editable fields. lowStock publishes a LowStockEvent
	// in the same transaction.
	Update(ctx context.Context, item *models.Item, lowStock bool) error

	Delete(ctx context.Context, userID, id uuid.UUID) error

	// FindLowStock returns products whose quantity is at or below their threshold.
	FindLowStock(ctx context.Context, userID uuid.UUID) ([]*models.Item, error)

	// AdjustStock locks the item, applies delta and publishes a LowStockEvent
	// when the threshold is crossed.
	AdjustStock(ctx context.Context, userID, id uuid.UUID, delta int) (*models.Item, error)
}
