// Package realtime pushes notifications to browsers. The API process keeps one
// Redis pattern subscription and relays each message to that user's WebSocket
// connections; any process can publish.
package realtime

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/notification/domain/models"
)

const channelPrefix = "notifications:"

// Channel returns the Redis pub/sub channel carrying userID's notifications.
func Channel(userID uuid.UUID) string {
	return channelPrefix + userID.String()
}

func userFromChannel(channel string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimPrefix(channel, channelPrefix))
	return id, err == nil
}

// Event is the JSON frame written to WebSocket clients.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Payload is the notification as pushed to clients.
type Payload struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisPublisher is the subset of *cache.RedisClient the Publisher needs.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// Publisher sends notifications over Redis pub/sub.
type Publisher struct {
	redis RedisPublisher
}

// NewPublisher returns a Publisher writing to r.
func NewPublisher(r RedisPublisher) *Publisher {
	return &Publisher{redis: r}
}

// Publish announces n on the owner's channel.
func (p *Publisher) Publish(ctx context.Context, n *models.Notification) error {
	return p.redis.Publish(ctx, Channel(n.UserID), Event{
		Type: "notification",
		Data: Payload{ID: n.ID, Kind: string(n.Kind), Title: n.Title, Body: n.Body, CreatedAt: n.CreatedAt},
	})
}
