package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/database"
	accountdomain "github.com/ghuser/bizzy/services/account/domain"
	"github.com/ghuser/bizzy/services/account/domain/models"
	"github.com/ghuser/bizzy/services/account/infrastructure/persistence/postgres/db"
)

const emailConstraint = "accounts_email_key"

// AccountRepository implements repositories.AccountRepository against PostgreSQL.
type AccountRepository struct {
	db *database.Database
}

// NewAccountRepository returns an AccountRepository backed by the given pool.
func NewAccountRepository(database *database.Database) *AccountRepository {
	return &AccountRepository{db: database}
}

// Save inserts a new account. Returns ErrEmailTaken on the email unique constraint.
func (r *AccountRepository) Save(ctx context.Context, a *models.Account) error {
	workers, err := database.Int32(a.Workers)
	if err != nil {
		return fmt.Errorf("%w: workers: %w", accountdomain.ErrInvalidAccount, err)
	}
	err = db.New(r.db.DB()).InsertAccount(ctx, db.InsertAccountParams{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		Sex:            a.Sex,
		Location:       a.Location,
		Workers:        workers,
		BusinessSector: a.Sector.String(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	})
	if database.IsUniqueViolation(err, emailConstraint) {
		return accountdomain.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID returns ErrAccountNotFound when no row matches.
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row, err := db.New(r.db.DB()).GetAccountByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, accountdomain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}
	return rowToAccount(row), nil
}

// GetByEmail expects an already normalized email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row, err := db.New(r.db.DB()).GetAccountByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, accountdomain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query account by email: %w", err)
	}
	return rowToAccount(row), nil
}

// UpdateProfile persists the editable profile fields.
func (r *AccountRepository) UpdateProfile(ctx context.Context, a *models.Account) error {
	workers, err := database.Int32(a.Workers)
	if err != nil {
		return fmt.Errorf("%w: workers: %w", accountdomain.ErrInvalidAccount, err)
	}
	n, err := db.New(r.db.DB()).UpdateAccountProfile(ctx, db.UpdateAccountProfileParams{
		ID:        a.ID,
		Name:      a.Name,
		Location:  a.Location,
		Workers:   workers,
		UpdatedAt: a.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if n == 0 {
		return accountdomain.ErrAccountNotFound
	}
	return nil
}

// ListIDs returns every account ID.
func (r *AccountRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := db.New(r.db.DB()).ListAccountIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list account ids: %w", err)
	}
	return ids, nil
}

func rowToAccount(row db.Account) *models.Account {
	return &models.Account{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Sex:          row.Sex,
		Location:     row.Location,
		Workers:      int(row.Workers),
		Sector:       business.Sector(row.BusinessSector),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
