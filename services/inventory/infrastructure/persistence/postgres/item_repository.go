package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/database"
	"github.com/ghuser/bizzy/pkg/events"
	inventorydomain "github.com/ghuser/bizzy/services/inventory/domain"
	domainevents "github.com/ghuser/bizzy/services/inventory/domain/events"
	"github.com/ghuser/bizzy/services/inventory/domain/models"
	"github.com/ghuser/bizzy/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/bizzy/services/inventory/domain/services"
	"github.com/ghuser/bizzy/services/inventory/infrastructure/persistence/postgres/db"
)

const codeConstraint = "inventory_items_user_code_key"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus events.TxPublisher
}

// NewItemRepository returns an ItemRepository backed by the given pool. Events
// are written to the outbox through bus inside the same transaction as the row.
func NewItemRepository(database *database.Database, bus events.TxPublisher) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save inserts a new item. Returns ErrItemAlreadyExists on the (user_id, code) constraint.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		quantity, threshold, err := stockColumns(item.Stock)
		if err != nil {
			return err
		}
		err = db.New(tx).InsertInventoryItem(ctx, db.InsertInventoryItemParams{
			ID:                item.ID,
			UserID:            item.UserID,
			Code:              item.Code,
			Name:              item.Name,
			Price:             item.Price,
			Quantity:          quantity,
			QuantityThreshold: threshold,
			CreatedAt:         item.CreatedAt,
			UpdatedAt:         item.UpdatedAt,
		})
		if database.IsUniqueViolation(err, codeConstraint) {
			return inventorydomain.ErrItemAlreadyExists
		}
		if err != nil {
			return fmt.Errorf("insert inventory item: %w", err)
		}

		if err := r.publishCreated(ctx, tx, item); err != nil {
			return fmt.Errorf("publish item created: %w", err)
		}
		if domainsvcs.CrossedThreshold(nil, item.Stock) {
			if err := r.publishLowStock(ctx, tx, item); err != nil {
				return fmt.Errorf("publish low stock: %w", err)
			}
		}
		return nil
	})
}

// GetByID returns ErrItemNotFound when the item does not exist for userID.
func (r *ItemRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetInventoryItem(ctx, db.GetInventoryItemParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, inventorydomain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory item: %w", err)
	}
	return rowToItem(row), nil
}

// FindByUserID returns a page of items ordered by code and the total count.
func (r *ItemRepository) FindByUserID(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	q := db.New(r.db.DB())

	limit, offset := database.PageArgs(opts.Limit, opts.Offset)
	rows, err := q.ListInventoryItems(ctx, db.ListInventoryItemsParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query inventory items: %w", err)
	}

	total, err := q.CountInventoryItems(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count inventory items: %w", err)
	}

	return rowsToItems(rows), int(total), nil
}

// ListCodes returns every code the user currently holds.
func (r *ItemRepository) ListCodes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	codes, err := db.New(r.db.DB()).ListInventoryCodes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list inventory codes: %w", err)
	}
	return codes, nil
}

// Update persists the editable fields of item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item, lowStock bool) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		quantity, threshold, err := stockColumns(item.Stock)
		if err != nil {
			return err
		}
		n, err := db.New(tx).UpdateInventoryItem(ctx, db.UpdateInventoryItemParams{
			ID:                item.ID,
			UserID:            item.UserID,
			Name:              item.Name,
			Price:             item.Price,
			Quantity:          quantity,
			QuantityThreshold: threshold,
			UpdatedAt:         item.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("update inventory item: %w", err)
		}
		if n == 0 {
			return inventorydomain.ErrItemNotFound
		}
		if lowStock {
			if err := r.publishLowStock(ctx, tx, item); err != nil {
				return fmt.Errorf("publish low stock: %w", err)
			}
		}
		return nil
	})
}

// Delete removes the item. Returns ErrItemNotFound when nothing was deleted.
func (r *ItemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteInventoryItem(ctx, db.DeleteInventoryItemParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if n == 0 {
		return inventorydomain.ErrItemNotFound
	}
	return nil
}

// FindLowStock returns products at or below their threshold, ordered by code.
func (r *ItemRepository) FindLowStock(ctx context.Context, userID uuid.UUID) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListLowStockItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query low stock: %w", err)
	}
	return rowsToItems(rows), nil
}

// AdjustStock applies delta under a row lock so concurrent sales cannot both
// pass the zero check.
func (r *ItemRepository) AdjustStock(ctx context.Context, userID, id uuid.UUID, delta int) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		row, err := q.GetInventoryItemForUpdate(ctx, db.GetInventoryItemForUpdateParams{ID: id, UserID: userID})
		if errors.Is(err, sql.ErrNoRows) {
			return inventorydomain.ErrItemNotFound
		}
		if err != nil {
			return fmt.Errorf("lock inventory item: %w", err)
		}
		item = rowToItem(row)
		if item.Stock == nil {
			return inventorydomain.ErrStockNotTracked
		}

		next, crossed, err := domainsvcs.Adjust(*item.Stock, delta)
		if err != nil {
			return err
		}
		item.Stock = &next
		item.UpdatedAt = time.Now().UTC()

		quantity, _, err := stockColumns(item.Stock)
		if err != nil {
			return err
		}
		if err := q.UpdateInventoryQuantity(ctx, db.UpdateInventoryQuantityParams{
			ID:        item.ID,
			UserID:    userID,
			Quantity:  quantity,
			UpdatedAt: item.UpdatedAt,
		}); err != nil {
			return fmt.Errorf("update quantity: %w", err)
		}
		if crossed {
			if err := r.publishLowStock(ctx, tx, item); err != nil {
				return fmt.Errorf("publish low stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) publishCreated(ctx context.Context, tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		UserID:     item.UserID,
		Code:       item.Code,
		Name:       item.Name,
		OccurredAt: item.CreatedAt,
	}
	return r.publish(ctx, tx, domainevents.TopicItemCreated, event.EventID, event.Version, event)
}

func (r *ItemRepository) publishLowStock(ctx context.Context, tx *sql.Tx, item *models.Item) error {
	event := domainevents.LowStockEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		UserID:     item.UserID,
		Code:       item.Code,
		Name:       item.Name,
		Quantity:   item.Stock.Quantity,
		Threshold:  item.Stock.Threshold,
		OccurredAt: item.UpdatedAt,
	}
	return r.publish(ctx, tx, domainevents.TopicLowStock, event.EventID, event.Version, event)
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, version int, payload any) error {
	if r.bus == nil {
		return nil
	}
	msg, err := events.NewJSONMessage(eventID.String(), version, payload)
	if err != nil {
		return err
	}
	return r.bus.PublishInTx(ctx, tx, topic, msg)
}

// stockColumns maps Stock to the nullable quantity columns. Values that do not
// fit an INTEGER are refused as ErrInvalidItem rather than truncated.
func stockColumns(s *models.Stock) (quantity, threshold sql.NullInt32, err error) {
	if s == nil {
		return sql.NullInt32{}, sql.NullInt32{}, nil
	}
	if quantity, err = database.NullInt32(&s.Quantity); err != nil {
		return quantity, threshold, fmt.Errorf("%w: quantity: %w", inventorydomain.ErrInvalidItem, err)
	}
	if threshold, err = database.NullInt32(&s.Threshold); err != nil {
		return quantity, threshold, fmt.Errorf("%w: quantity_threshold: %w", inventorydomain.ErrInvalidItem, err)
	}
	return quantity, threshold, nil
}

func rowsToItems(rows []db.InventoryItem) []*models.Item {
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items
}

// rowToItem maps a db.InventoryItem to a domain models.Item. Rows without a
// quantity belong to service businesses.
func rowToItem(row db.InventoryItem) *models.Item {
	item := &models.Item{
		ID:        row.ID,
		UserID:    row.UserID,
		Code:      row.Code,
		Name:      row.Name,
		Price:     row.Price,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Quantity.Valid {
		item.Stock = &models.Stock{
			Quantity:  int(row.Quantity.Int32),
			Threshold: int(row.QuantityThreshold.Int32),
		}
	}
	return item
}
