package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/business"
)

const maxNameLength = 255

// MaxQuantity is the largest quantity or threshold a product can hold.
const MaxQuantity = math.MaxInt32

// Stock is the quantity on hand of a product and the level at or below which
// it counts as low.
type Stock struct {
	Quantity  int
	Threshold int
}

// Low reports whether the quantity is at or below the threshold.
func (s Stock) Low() bool {
	return s.Quantity <= s.Threshold
}

// Item is a product or service offered by one user. Stock is nil for services.
type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string // assigned once at creation, e.g. P0007
	Name      string
	Price     decimal.Decimal
	Stock     *Stock
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemParams carries the editable fields. Quantity and Threshold are required
// for products and ignored for services.
type ItemParams struct {
	Name      string
	Price     decimal.Decimal
	Quantity  *int
	Threshold *int
}

// NewItem builds an Item for userID with the given code.
func NewItem(userID uuid.UUID, sector business.Sector, code string, p ItemParams) (*Item, error) {
	if code == "" {
		return nil, errors.New("code must be set")
	}
	item := &Item{
		ID:     uuid.New(),
		UserID: userID,
		Code:   code,
	}
	if err := item.apply(sector, p); err != nil {
		return nil, err
	}
	item.CreatedAt = item.UpdatedAt
	return item, nil
}

// Update replaces the editable fields. The code is left untouched.
func (i *Item) Update(sector business.Sector, p ItemParams) error {
	return i.apply(sector, p)
}

// IsLow reports whether a product is at or below its threshold. Services never are.
func (i *Item) IsLow() bool {
	return i.Stock != nil && i.Stock.Low()
}

func (i *Item) apply(sector business.Sector, p ItemParams) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("name must not be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	stock, err := stockFor(sector, p)
	if err != nil {
		return err
	}
	i.Name = name
	i.Price = p.Price.Round(2)
	i.Stock = stock
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func stockFor(sector business.Sector, p ItemParams) (*Stock, error) {
	if !sector.TracksStock() {
		return nil, nil
	}
	if p.Quantity == nil || p.Threshold == nil {
		return nil, errors.New("quantity and quantity_threshold are required for products")
	}
	if *p.Quantity < 0 || *p.Threshold < 0 {
		return nil, errors.New("quantity and quantity_threshold must not be negative")
	}
	if *p.Quantity > MaxQuantity || *p.Threshold > MaxQuantity {
		return nil, fmt.Errorf("quantity and quantity_threshold must not exceed %d", MaxQuantity)
	}
	return &Stock{Quantity: *p.Quantity, Threshold: *p.Threshold}, nil
}
