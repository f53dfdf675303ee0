// Package business holds the business sector shared by the account, inventory
// and transaction contexts.
package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sector is chosen at registration and never changes afterwards: inventory
// codes and transaction types both depend on it.
type Sector string

const (
	Products Sector = "Products"
	Services Sector = "Services"
)

// ErrInvalidSector is returned for anything other than Products or Services.
var ErrInvalidSector = errors.New("invalid business sector")

// ParseSector validates s.
func ParseSector(s string) (Sector, error) {
	switch Sector(s) {
	case Products, Services:
		return Sector(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSector, s)
	}
}

// CodePrefix is the identifier prefix of inventory records in this sector.
func (s Sector) CodePrefix() string {
	if s == Services {
		return "S"
	}
	return "P"
}

// TracksStock reports whether inventory records carry quantities.
func (s Sector) TracksStock() bool {
	return s == Products
}

func (s Sector) String() string {
	return string(s)
}

// SectorLookup resolves the sector a user registered with.
type SectorLookup interface {
	Sector(ctx context.Context, userID uuid.UUID) (Sector, error)
}
