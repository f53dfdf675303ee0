package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxMessageLength bounds a question in characters.
const MaxMessageLength = 4000

// Sender tells who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Type tells what a chat message carries.
type Type string

const (
	TypeText     Type = "text"
	TypeImage    Type = "image"
	TypeDocument Type = "document"
)

// ParseAttachmentType accepts the types a user can attach.
func ParseAttachmentType(s string) (Type, error) {
	switch Type(s) {
	case TypeImage, TypeDocument:
		return Type(s), nil
	default:
		return "", fmt.Errorf("attachment type must be image or document, got %q", s)
	}
}

// Message is one entry of a user's chat history. Image and document messages
// point at a stored file through DocumentID and carry its name as Text.
type Message struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Sender     Sender
	Type       Type
	Text       string
	DocumentID *uuid.UUID
	CreatedAt  time.Time
}

// NewUserMessage validates a question.
func NewUserMessage(userID uuid.UUID, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("message text is required")
	}
	if n := utf8.RuneCountInString(text); n > MaxMessageLength {
		return nil, fmt.Errorf("message is %d characters, limit is %d", n, MaxMessageLength)
	}
	return newMessage(userID, SenderUser, text), nil
}

// NewBotMessage wraps an assistant reply.
func NewBotMessage(userID uuid.UUID, text string) *Message {
	return newMessage(userID, SenderBot, text)
}

// NewAttachmentMessage records a file the user attached to the chat.
func NewAttachmentMessage(userID uuid.UUID, typ Type, documentID uuid.UUID, name string) (*Message, error) {
	if typ != TypeImage && typ != TypeDocument {
		return nil, fmt.Errorf("attachment type must be image or document, got %q", typ)
	}
	if documentID == uuid.Nil {
		return nil, errors.New("attachment has no document")
	}
	m := newMessage(userID, SenderUser, strings.TrimSpace(name))
	m.Type = typ
	m.DocumentID = &documentID
	return m, nil
}

func newMessage(userID uuid.UUID, sender Sender, text string) *Message {
	return &Message{
		ID:        uuid.New(),
		UserID:    userID,
		Sender:    sender,
		Type:      TypeText,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
