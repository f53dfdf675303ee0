package subscribers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/events"
	"github.com/ghuser/bizzy/pkg/logger"
	appsvcs "github.com/ghuser/bizzy/services/inventory/application/services"
	inventorydomain "github.com/ghuser/bizzy/services/inventory/domain"
	inventoryevents "github.com/ghuser/bizzy/services/inventory/domain/events"
	"github.com/ghuser/bizzy/services/inventory/domain/models"
	"github.com/ghuser/bizzy/services/inventory/domain/repositories"
)

// itemReader serves GetByID from a map; the other repository methods are unused.
type itemReader struct {
	repositories.ItemRepository
	items map[uuid.UUID]*models.Item
	err   error
}

func (r *itemReader) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Item, error) {
	if r.err != nil {
		return nil, r.err
	}
	it, ok := r.items[id]
	if !ok || it.UserID != userID {
		return nil, inventorydomain.ErrItemNotFound
	}
	return it, nil
}

type mapCache map[uuid.UUID]*appsvcs.CachedItem

func (c mapCache) Get(_ context.Context, _, id uuid.UUID) (*appsvcs.CachedItem, error) {
	if v := c[id]; v != nil {
		return v, nil
	}
	return nil, redis.Nil
}

func (c mapCache) Fill(_ context.Context, _, id uuid.UUID, v *appsvcs.CachedItem) (bool, error) {
	if _, ok := c[id]; ok {
		return false, nil
	}
	c[id] = v
	return true, nil
}

func (c mapCache) Invalidate(_ context.Context, _, id uuid.UUID) error {
	c[id] = nil
	return nil
}

type sectorStub struct{}

func (sectorStub) Sector(context.Context, uuid.UUID) (business.Sector, error) {
	return business.Products, nil
}

func createdMessage(t *testing.T, item *models.Item) *message.Message {
	t.Helper()
	evt := inventoryevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		UserID:     item.UserID,
		Code:       item.Code,
		Name:       item.Name,
		OccurredAt: time.Now(),
	}
	msg, err := events.NewJSONMessage(evt.EventID.String(), evt.Version, evt)
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	return msg
}

func TestWarmCache_FillsCache(t *testing.T) {
	qty, threshold := 12, 3
	item, err := models.NewItem(uuid.New(), business.Products, "P0001", models.ItemParams{
		Name: "Cement", Price: decimal.NewFromInt(90), Quantity: &qty, Threshold: &threshold,
	})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	repo := &itemReader{items: map[uuid.UUID]*models.Item{item.ID: item}}
	c := mapCache{}
	svc := appsvcs.NewInventoryService(repo, sectorStub{}, c, logger.Discard())

	if err := WarmCache(svc, logger.Discard())(context.Background(), createdMessage(t, item)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got := c[item.ID]; got == nil || got.Code != "P0001" || *got.Quantity != 12 {
		t.Fatalf("cached entry = %+v", got)
	}
}

func TestWarmCache_SkipsDeletedAndMalformed(t *testing.T) {
	repo := &itemReader{items: map[uuid.UUID]*models.Item{}}
	c := mapCache{}
	handler := WarmCache(appsvcs.NewInventoryService(repo, sectorStub{}, c, logger.Discard()), logger.Discard())

	gone := &models.Item{ID: uuid.New(), UserID: uuid.New(), Code: "P0002", Name: "Sand"}
	if err := handler(context.Background(), createdMessage(t, gone)); err != nil {
		t.Fatalf("deleted item should be acked, got %v", err)
	}
	if err := handler(context.Background(), message.NewMessage(watermill.NewUUID(), []byte("{"))); err != nil {
		t.Fatalf("malformed payload should be acked, got %v", err)
	}
	if len(c) != 0 {
		t.Fatalf("nothing should be cached, got %v", c)
	}
}

func TestWarmCache_RetriesOnReadFailure(t *testing.T) {
	repo := &itemReader{err: errors.New("connection reset")}
	handler := WarmCache(appsvcs.NewInventoryService(repo, sectorStub{}, mapCache{}, logger.Discard()), logger.Discard())

	item := &models.Item{ID: uuid.New(), UserID: uuid.New(), Code: "P0003", Name: "Nails"}
	if err := handler(context.Background(), createdMessage(t, item)); err == nil {
		t.Fatal("expected error so the bus retries")
	}
}
