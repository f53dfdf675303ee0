package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/business"
	accountdomain "github.com/ghuser/bizzy/services/account/domain"
	"github.com/ghuser/bizzy/services/account/domain/models"
	"github.com/ghuser/bizzy/services/account/domain/repositories"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Sex      string
	Location string
	Workers  int
	Sector   string
}

// ProfileInput holds the editable profile fields.
type ProfileInput struct {
	Name     string
	Location string
	Workers  int
}

// AccountService registers accounts, authenticates them and serves profiles.
// Other contexts read an account's business sector through Sector.
type AccountService struct {
	repo repositories.AccountRepository
}

// NewAccountService returns an AccountService backed by repo.
func NewAccountService(repo repositories.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register hashes the password and stores a new account.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.Account, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", accountdomain.ErrInvalidAccount, err)
	}
	account, err := models.NewAccount(models.NewAccountParams{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Sex:          in.Sex,
		Location:     in.Location,
		Workers:      in.Workers,
		Sector:       in.Sector,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", accountdomain.ErrInvalidAccount, err)
	}
	if err := s.repo.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}
	return account, nil
}

// Authenticate returns the account for email when password matches. Unknown
// emails and wrong passwords both yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	normalized, err := models.NormalizeEmail(email)
	if err != nil {
		return nil, accountdomain.ErrInvalidCredentials
	}
	account, err := s.repo.GetByEmail(ctx, normalized)
	if errors.Is(err, accountdomain.ErrAccountNotFound) {
		return nil, accountdomain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if err := auth.CheckPassword(account.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, accountdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}
	return account, nil
}

// Get returns the account with id.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// UpdateProfile changes name, location and workers. The sector cannot be edited.
func (s *AccountService) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileInput) (*models.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if err := account.UpdateProfile(in.Name, in.Location, in.Workers); err != nil {
		return nil, fmt.Errorf("%w: %w", accountdomain.ErrInvalidAccount, err)
	}
	if err := s.repo.UpdateProfile(ctx, account); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return account, nil
}

// Sector returns the business sector of userID.
func (s *AccountService) Sector(ctx context.Context, userID uuid.UUID) (business.Sector, error) {
	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("account sector: %w", err)
	}
	return account.Sector, nil
}

// UserIDs lists every registered account; the recommendation sweep iterates it.
func (s *AccountService) UserIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return ids, nil
}
