package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/database"
	"github.com/ghuser/bizzy/services/assistant/domain/models"
	"github.com/ghuser/bizzy/services/assistant/domain/repositories"
	"github.com/ghuser/bizzy/services/assistant/infrastructure/persistence/postgres/db"
)

// MessageRepository implements repositories.MessageRepository against PostgreSQL.
type MessageRepository struct {
	db *database.Database
}

// NewMessageRepository returns a MessageRepository backed by the given pool.
func NewMessageRepository(database *database.Database) *MessageRepository {
	return &MessageRepository{db: database}
}

func (r *MessageRepository) Save(ctx context.Context, m *models.Message) error {
	var documentID uuid.NullUUID
	if m.DocumentID != nil {
		documentID = uuid.NullUUID{UUID: *m.DocumentID, Valid: true}
	}
	err := db.New(r.db.DB()).InsertChatMessage(ctx, db.InsertChatMessageParams{
		ID:         m.ID,
		UserID:     m.UserID,
		Sender:     string(m.Sender),
		Type:       string(m.Type),
		Text:       m.Text,
		DocumentID: documentID,
		CreatedAt:  m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *MessageRepository) History(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Message, int, error) {
	q := db.New(r.db.DB())
	limit, offset := database.PageArgs(opts.Limit, opts.Offset)
	rows, err := q.ListChatMessages(ctx, db.ListChatMessagesParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query chat messages: %w", err)
	}
	total, err := q.CountChatMessages(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count chat messages: %w", err)
	}

	msgs := make([]*models.Message, len(rows))
	for i, row := range rows {
		msgs[i] = &models.Message{
			ID:        row.ID,
			UserID:    row.UserID,
			Sender:    models.Sender(row.Sender),
			Type:      models.Type(row.Type),
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		}
		if row.DocumentID.Valid {
			id := row.DocumentID.UUID
			msgs[i].DocumentID = &id
		}
	}
	return msgs, int(total), nil
}
