package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/migrations/assistant"
	"github.com/ghuser/bizzy/pkg/database"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/migrator"
	"github.com/ghuser/bizzy/services/assistant/domain/models"
	"github.com/ghuser/bizzy/services/assistant/domain/repositories"
)

// Integration tests: skipped unless DATABASE_URL is set.
func TestMessageRepositoryIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	if err := migrator.RunMigrations(ctx, dsn, migrator.Source{Name: "assistant", Files: assistant.FS}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := database.NewPool(ctx, dsn, logger.Discard())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	repo := NewMessageRepository(pool)
	userID := uuid.New()

	q, _ := models.NewUserMessage(userID, "How are sales?")
	a := models.NewBotMessage(userID, "Up 10% this week.")
	docID := uuid.New()
	img, _ := models.NewAttachmentMessage(userID, models.TypeImage, docID, "shelf.jpg")
	for _, m := range []*models.Message{q, a, img} {
		if err := repo.Save(ctx, m); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	msgs, total, err := repo.History(ctx, userID, repositories.QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if total != 3 || len(msgs) != 3 {
		t.Fatalf("History = %d/%d, want 3/3", len(msgs), total)
	}
	if msgs[0].ID != q.ID || msgs[1].Sender != models.SenderBot {
		t.Fatalf("history out of order: %+v", msgs)
	}
	if msgs[0].Type != models.TypeText || msgs[0].DocumentID != nil {
		t.Fatalf("question came back as %+v", msgs[0])
	}
	if got := msgs[2]; got.Type != models.TypeImage || got.DocumentID == nil || *got.DocumentID != docID || got.Text != "shelf.jpg" {
		t.Fatalf("attachment came back as %+v", got)
	}

	other, total, err := repo.History(ctx, uuid.New(), repositories.QueryOpts{Limit: 10})
	if err != nil || total != 0 || len(other) != 0 {
		t.Fatalf("other user history = %v, %d, %v", other, total, err)
	}
}
