package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/notification/domain/models"
)

// QueryOpts contains filter and pagination parameters for list queries.
type QueryOpts struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// NotificationRepository is the persistence interface for notifications.
type NotificationRepository interface {
	// Save inserts n and reports whether it was new. Saving an existing ID is a no-op.
	Save(ctx context.Context, n *models.Notification) (bool, error)
	// FindByUserID returns the user's notifications, newest first, and the total count.
	FindByUserID(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Notification, int, error)
	// MarkRead sets read_at unless it is already set. Returns ErrNotificationNotFound.
	MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) (*models.Notification, error)
}
