package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/document/domain/models"
)

// DocumentRepository stores document metadata. The bytes live in the object store.
type DocumentRepository interface {
	Save(ctx context.Context, d *models.Document) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Document, error)

	// FindByUserID lists the user's documents, newest first. A nil kind lists both kinds.
	FindByUserID(ctx context.Context, userID uuid.UUID, kind *models.Kind) ([]*models.Document, error)

	Delete(ctx context.Context, userID, id uuid.UUID) error
}
