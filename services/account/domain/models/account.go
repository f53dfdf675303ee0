package models

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/business"
)

const maxNameLength = 255

// MaxWorkers bounds the workers field of a profile.
const MaxWorkers = 1_000_000

// Account is a registered business owner. Its ID scopes every per-user collection.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string // stored lower-cased
	PasswordHash string
	Sex          string
	Location     string
	Workers      int
	Sector       business.Sector
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccountParams carries validated registration input. PasswordHash must
// already be a bcrypt hash.
type NewAccountParams struct {
	Name         string
	Email        string
	PasswordHash string
	Sex          string
	Location     string
	Workers      int
	Sector       string
}

// NewAccount builds an Account with a generated ID.
func NewAccount(p NewAccountParams) (*Account, error) {
	name, err := cleanName(p.Name)
	if err != nil {
		return nil, err
	}
	email, err := NormalizeEmail(p.Email)
	if err != nil {
		return nil, err
	}
	sector, err := business.ParseSector(p.Sector)
	if err != nil {
		return nil, err
	}
	if err := checkWorkers(p.Workers); err != nil {
		return nil, err
	}
	if p.PasswordHash == "" {
		return nil, errors.New("password hash must be set")
	}
	now := time.Now().UTC()
	return &Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: p.PasswordHash,
		Sex:          strings.TrimSpace(p.Sex),
		Location:     strings.TrimSpace(p.Location),
		Workers:      p.Workers,
		Sector:       sector,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// UpdateProfile changes the editable fields. The sector is fixed at registration.
func (a *Account) UpdateProfile(name, location string, workers int) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}
	if err := checkWorkers(workers); err != nil {
		return err
	}
	a.Name = clean
	a.Location = strings.TrimSpace(location)
	a.Workers = workers
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func checkWorkers(n int) error {
	if n < 0 || n > MaxWorkers {
		return fmt.Errorf("workers must be between 0 and %d", MaxWorkers)
	}
	return nil
}

// NormalizeEmail validates and lower-cases an email address.
func NormalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", fmt.Errorf("invalid email %q", s)
	}
	return s, nil
}

func cleanName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("name must not be empty")
	}
	if len(s) > maxNameLength {
		return "", fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	return s, nil
}
