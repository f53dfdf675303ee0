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
	"github.com/ghuser/bizzy/services/transaction/domain/catalog"
)

// MaxQuantity is the largest quantity a single transaction can move.
const MaxQuantity = math.MaxInt32

// Category splits transactions into money in and money out.
type Category string

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

// ParseCategory validates s.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Income, Expense:
		return Category(s), nil
	default:
		return "", fmt.Errorf("category must be Income or Expense, got %q", s)
	}
}

// Customer is the counterparty recorded with a transaction.
type Customer struct {
	Name     string
	Phone    string
	Age      *int
	Gender   string
	Location string
}

// Transaction is one recorded sale, payment or expense.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Sector    business.Sector
	Type      string
	Category  Category
	ItemID    *uuid.UUID
	ItemName  string
	Amount    decimal.Decimal
	Quantity  int
	Customer  Customer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionParams carries the editable fields. ItemName is resolved by the
// caller from ItemID.
type TransactionParams struct {
	Type     string
	Category string
	ItemID   *uuid.UUID
	ItemName string
	Amount   decimal.Decimal
	Quantity int
	Customer Customer
}

// NewTransaction builds a Transaction for a user of the given sector.
func NewTransaction(userID uuid.UUID, sector business.Sector, p TransactionParams) (*Transaction, error) {
	t := &Transaction{ID: uuid.New(), UserID: userID, Sector: sector}
	if err := t.apply(p); err != nil {
		return nil, err
	}
	t.CreatedAt = t.UpdatedAt
	return t, nil
}

// Update replaces the editable fields. The sector stays as recorded.
func (t *Transaction) Update(p TransactionParams) error {
	return t.apply(p)
}

// SellsStock reports whether recording t takes Quantity units of the item out of stock.
func (t *Transaction) SellsStock() bool {
	return t.Sector.TracksStock() && t.Category == Income && t.ItemID != nil && t.Quantity > 0
}

func (t *Transaction) apply(p TransactionParams) error {
	if !catalog.Default.Allows(t.Sector, p.Type) {
		return fmt.Errorf("type %q is not available to %s businesses", p.Type, t.Sector)
	}
	category, err := ParseCategory(p.Category)
	if err != nil {
		return err
	}
	if t.Sector == business.Services && p.ItemID == nil {
		return errors.New("service transactions must reference a service")
	}
	if !p.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	if p.Quantity < 0 || p.Quantity > MaxQuantity {
		return fmt.Errorf("quantity must be between 0 and %d", MaxQuantity)
	}
	c := p.Customer
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" || c.Phone == "" {
		return errors.New("customer name and phone are required")
	}
	if c.Age != nil && (*c.Age < 0 || *c.Age > 150) {
		return errors.New("customer age must be between 0 and 150")
	}

	t.Type = p.Type
	t.Category = category
	t.ItemID = p.ItemID
	t.ItemName = p.ItemName
	if p.ItemID == nil {
		t.ItemName = ""
	}
	t.Amount = p.Amount.Round(2)
	t.Quantity = p.Quantity
	t.Customer = c
	t.UpdatedAt = time.Now().UTC()
	return nil
}
