package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/business"
)

func intp(n int) *int { return &n }

func TestNewItem_Product(t *testing.T) {
	userID := uuid.New()
	item, err := NewItem(userID, business.Products, "P0001", ItemParams{
		Name:      "  Cement 50kg ",
		Price:     decimal.RequireFromString("129.999"),
		Quantity:  intp(4),
		Threshold: intp(5),
	})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if item.Name != "Cement 50kg" {
		t.Errorf("name = %q", item.Name)
	}
	if !item.Price.Equal(decimal.RequireFromString("130")) {
		t.Errorf("price = %s, want 130 (rounded to cents)", item.Price)
	}
	if item.Stock == nil || item.Stock.Quantity != 4 {
		t.Fatalf("stock = %+v", item.Stock)
	}
	if !item.IsLow() {
		t.Error("4 <= 5 should be low")
	}
	if item.UserID != userID || item.Code != "P0001" {
		t.Errorf("unexpected identity %+v", item)
	}
}

func TestNewItem_ServiceIgnoresStock(t *testing.T) {
	item, err := NewItem(uuid.New(), business.Services, "S0003", ItemParams{
		Name:     "Plumbing call-out",
		Price:    decimal.NewFromInt(350),
		Quantity: intp(10),
	})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if item.Stock != nil {
		t.Fatalf("services must not carry stock, got %+v", item.Stock)
	}
	if item.IsLow() {
		t.Error("services are never low")
	}
}

func TestNewItem_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		sector business.Sector
		code   string
		p      ItemParams
	}{
		{"empty name", business.Services, "S0001", ItemParams{Name: " "}},
		{"negative price", business.Services, "S0001", ItemParams{Name: "x", Price: decimal.NewFromInt(-1)}},
		{"product without quantity", business.Products, "P0001", ItemParams{Name: "x", Threshold: intp(1)}},
		{"negative quantity", business.Products, "P0001", ItemParams{Name: "x", Quantity: intp(-1), Threshold: intp(1)}},
		{"missing code", business.Services, "", ItemParams{Name: "x"}},
		{"quantity beyond range", business.Products, "P0001", ItemParams{Name: "x", Quantity: intp(4294967297), Threshold: intp(1)}},
		{"threshold beyond range", business.Products, "P0001", ItemParams{Name: "x", Quantity: intp(1), Threshold: intp(MaxQuantity + 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewItem(uuid.New(), tt.sector, tt.code, tt.p); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestUpdate_KeepsCode(t *testing.T) {
	item, err := NewItem(uuid.New(), business.Products, "P0042", ItemParams{
		Name: "Bricks", Price: decimal.NewFromInt(2), Quantity: intp(100), Threshold: intp(10),
	})
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if err := item.Update(business.Products, ItemParams{
		Name: "Red bricks", Price: decimal.NewFromInt(3), Quantity: intp(80), Threshold: intp(10),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if item.Code != "P0042" || item.Name != "Red bricks" || item.Stock.Quantity != 80 {
		t.Fatalf("unexpected item after update %+v", item)
	}
}
