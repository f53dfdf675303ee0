package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Metadata keys set on every domain event message.
const (
	MetaEventID      = "event_id"
	MetaEventVersion = "event_version"
)

// Handler consumes one event message. The bus retries it on error.
type Handler func(context.Context, *message.Message) error

// Subscription binds a handler to a topic. Each context lists its own and the
// worker subscribes to all of them.
type Subscription struct {
	Topic   string
	Handler Handler
}

// TxPublisher publishes messages inside a caller-owned transaction.
// *EventBus implements it; repositories depend on this interface.
type TxPublisher interface {
	PublishInTx(ctx context.Context, tx *sql.Tx, topic string, msgs ...*message.Message) error
}

// NewJSONMessage encodes payload as the body of a new message and tags it with
// the event ID and schema version consumers use for deduplication.
func NewJSONMessage(eventID string, version int, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set(MetaEventID, eventID)
	msg.Metadata.Set(MetaEventVersion, strconv.Itoa(version))
	return msg, nil
}

// DecodeJSON unmarshals a message body into T.
func DecodeJSON[T any](msg *message.Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("events: decode %s: %w", msg.UUID, err)
	}
	return v, nil
}
