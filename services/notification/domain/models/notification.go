package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind tells what raised a notification.
type Kind string

const (
	KindLowStock       Kind = "low_stock"
	KindRecommendation Kind = "recommendation"
)

// Titles shown for each kind.
const (
	LowStockTitle       = "Low Stock Alert"
	RecommendationTitle = "Marketing Recommendation"
)

// Notification is an in-app message for one account.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      Kind
	Title     string
	Body      string
	CreatedAt time.Time
	ReadAt    *time.Time
}

// namespace seeds deterministic IDs so a redelivered event or a retried
// activity maps to the same notification.
var namespace = uuid.MustParse("5b0f6b52-8f5e-4c1a-9d0e-3f1f2c7c9a10")

// NewLowStockAlert builds the alert raised when a product reaches its threshold.
// sourceID identifies the triggering event.
func NewLowStockAlert(userID uuid.UUID, sourceID string, name, code string, quantity, threshold int, at time.Time) (*Notification, error) {
	body := fmt.Sprintf("%s (%s) is low on stock: %d left, threshold %d.", name, code, quantity, threshold)
	return newNotification(userID, sourceID, KindLowStock, LowStockTitle, body, at)
}

// NewRecommendation builds a marketing recommendation notification.
func NewRecommendation(userID uuid.UUID, sourceID, text string, at time.Time) (*Notification, error) {
	return newNotification(userID, sourceID, KindRecommendation, RecommendationTitle, text, at)
}

func newNotification(userID uuid.UUID, sourceID string, kind Kind, title, body string, at time.Time) (*Notification, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errors.New("body is required")
	}
	if sourceID == "" {
		return nil, errors.New("source id is required")
	}
	return &Notification{
		ID:        uuid.NewSHA1(namespace, []byte(string(kind)+":"+sourceID)),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: at.UTC(),
	}, nil
}

// IsRead reports whether the user has seen the notification.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
