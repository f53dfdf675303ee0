package services

import (
	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/cache"
	"github.com/ghuser/bizzy/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the inventory context.
type Services struct {
	Inventory *InventoryService
}

// New wires the inventory services. sectors is the account context's sector lookup.
func New(a *app.Application, sectors business.SectorLookup) *Services {
	repo := postgres.NewItemRepository(a.Db, a.EventBus)
	var itemCache ItemCache
	if a.Redis != nil {
		itemCache = cache.NewRecordCache[CachedItem](a.Redis, "inventory", cache.DefaultRecordTTL)
	}
	return &Services{
		Inventory: NewInventoryService(repo, sectors, itemCache, a.Logger),
	}
}
