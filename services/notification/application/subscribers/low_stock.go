// Package subscribers turns events from other contexts into notifications.
package subscribers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/bizzy/pkg/events"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/telemetry"
	inventoryevents "github.com/ghuser/bizzy/services/inventory/domain/events"
	appsvcs "github.com/ghuser/bizzy/services/notification/application/services"
)

// All returns the notification context's subscriptions.
func All(svcs *appsvcs.Services, log logger.Logger) []events.Subscription {
	return []events.Subscription{
		{Topic: inventoryevents.TopicLowStock, Handler: LowStock(svcs.Notification, log)},
	}
}

// LowStock raises a "Low Stock Alert" for each inventory.low_stock event.
// Redelivered events map to the same notification.
func LowStock(svc *appsvcs.NotificationService, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeJSON[inventoryevents.LowStockEvent](msg)
		if err != nil {
			// A malformed payload will not improve on retry.
			log.ErrorContext(ctx, "dropping undecodable low stock event", "message_id", msg.UUID, "error", err)
			telemetry.CaptureError(ctx, err, map[string]string{"topic": inventoryevents.TopicLowStock})
			return nil
		}

		sourceID := evt.EventID.String()
		if id := msg.Metadata.Get(events.MetaEventID); id != "" {
			sourceID = id
		}
		err = svc.AlertLowStock(ctx, appsvcs.LowStockInput{
			SourceID:  sourceID,
			UserID:    evt.UserID,
			Name:      evt.Name,
			Code:      evt.Code,
			Quantity:  evt.Quantity,
			Threshold: evt.Threshold,
			At:        evt.OccurredAt,
		})
		if err != nil {
			return fmt.Errorf("low stock alert for item %s: %w", evt.ItemID, err)
		}
		return nil
	}
}
