package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/account/domain/models"
)

// AccountRepository is the persistence interface for the Account aggregate.
type AccountRepository interface {
	// Save inserts a new account. Returns ErrEmailTaken when the email exists.
	Save(ctx context.Context, a *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// UpdateProfile persists name, location and workers.
	UpdateProfile(ctx context.Context, a *models.Account) error
	// ListIDs returns every account ID, oldest first.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}
