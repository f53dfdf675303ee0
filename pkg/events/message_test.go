package events

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
)

type stockEvent struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

func TestNewJSONMessage_Metadata(t *testing.T) {
	msg, err := NewJSONMessage("evt-1", 2, stockEvent{Code: "P0004", Quantity: 1})
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	if msg.UUID == "" {
		t.Fatal("expected a message UUID")
	}
	if got := msg.Metadata.Get(MetaEventID); got != "evt-1" {
		t.Errorf("event_id = %q", got)
	}
	if got := msg.Metadata.Get(MetaEventVersion); got != "2" {
		t.Errorf("event_version = %q", got)
	}

	decoded, err := DecodeJSON[stockEvent](msg)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if decoded.Code != "P0004" || decoded.Quantity != 1 {
		t.Fatalf("unexpected payload %+v", decoded)
	}
}

func TestNewJSONMessage_UnencodablePayload(t *testing.T) {
	if _, err := NewJSONMessage("evt", 1, make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	msg := message.NewMessage("id", []byte("{not json"))
	if _, err := DecodeJSON[stockEvent](msg); err == nil {
		t.Fatal("expected decode error")
	}
}
