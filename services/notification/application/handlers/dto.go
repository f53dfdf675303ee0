package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/services/notification/domain/models"
)

// NotificationResponse is one notification.
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Kind      string     `json:"kind"       example:"low_stock"`
	Title     string     `json:"title"      example:"Low Stock Alert"`
	Body      string     `json:"body"       example:"Cement (P-0001) is low on stock: 2 left, threshold 5."`
	Read      bool       `json:"read"       example:"false"`
	CreatedAt time.Time  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
} // @name NotificationResponse

// NotificationPage is a page of notifications, newest first.
type NotificationPage = httpx.Page[NotificationResponse] // @name NotificationPage

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"notification not found"`
} // @name ErrorResponse

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}
