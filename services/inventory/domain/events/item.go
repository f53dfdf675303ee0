package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context.
const (
	TopicItemCreated = "inventory.item_created"
	TopicLowStock    = "inventory.low_stock"
)

// ItemCreatedEvent is published after a new product or service is persisted.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	UserID     uuid.UUID `json:"user_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LowStockEvent is published when a product's quantity reaches its threshold.
// The notification worker turns it into a "Low Stock Alert".
type LowStockEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	UserID     uuid.UUID `json:"user_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Threshold  int       `json:"threshold"`
	OccurredAt time.Time `json:"occurred_at"`
}
