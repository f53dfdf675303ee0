package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/task/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// TaskRepository is the persistence interface for tasks, scoped per user.
type TaskRepository interface {
	// Save returns ErrTaskAlreadyExists when the code is taken.
	Save(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Task, int, error)

	// FindAll returns every task of the user; used for summaries.
	FindAll(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	ListCodes(ctx context.Context, userID uuid.UUID) ([]string, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
