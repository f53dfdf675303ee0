package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/assistant/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// MessageRepository stores chat history.
type MessageRepository interface {
	Save(ctx context.Context, m *models.Message) error

	// History returns a page of the user's messages in the order they were
	// saved, plus the total count.
	History(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Message, int, error)
}
