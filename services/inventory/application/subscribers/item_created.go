// Package subscribers reacts to the inventory context's own events.
package subscribers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/bizzy/pkg/events"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/telemetry"
	inventorydomain "github.com/ghuser/bizzy/services/inventory/domain"
	inventoryevents "github.com/ghuser/bizzy/services/inventory/domain/events"
	appsvcs "github.com/ghuser/bizzy/services/inventory/application/services"
)

// All returns the inventory context's subscriptions.
func All(svcs *appsvcs.Services, log logger.Logger) []events.Subscription {
	return []events.Subscription{
		{Topic: inventoryevents.TopicItemCreated, Handler: WarmCache(svcs.Inventory, log)},
	}
}

// WarmCache loads each newly created item through the read-through cache so
// the first dashboard or sale lookup is a hit. Items deleted before the event
// arrives are skipped.
func WarmCache(svc *appsvcs.InventoryService, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeJSON[inventoryevents.ItemCreatedEvent](msg)
		if err != nil {
			log.ErrorContext(ctx, "dropping undecodable item created event", "message_id", msg.UUID, "error", err)
			telemetry.CaptureError(ctx, err, map[string]string{"topic": inventoryevents.TopicItemCreated})
			return nil
		}

		_, err = svc.Get(ctx, evt.UserID, evt.ItemID)
		if errors.Is(err, inventorydomain.ErrItemNotFound) {
			log.DebugContext(ctx, "item gone before cache warm", "item_id", evt.ItemID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("warm cache for item %s: %w", evt.ItemID, err)
		}
		return nil
	}
}
