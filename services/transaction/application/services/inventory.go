package services

import (
	"context"

	"github.com/google/uuid"

	inventorysvcs "github.com/ghuser/bizzy/services/inventory/application/services"
)

// inventoryAdapter exposes the inventory service through the Inventory interface.
type inventoryAdapter struct {
	svc *inventorysvcs.InventoryService
}

func (a inventoryAdapter) ItemName(ctx context.Context, userID, itemID uuid.UUID) (string, error) {
	item, err := a.svc.Get(ctx, userID, itemID)
	if err != nil {
		return "", err
	}
	return item.Name, nil
}

func (a inventoryAdapter) AdjustStock(ctx context.Context, userID, itemID uuid.UUID, delta int) error {
	_, err := a.svc.AdjustStock(ctx, userID, itemID, delta)
	return err
}
