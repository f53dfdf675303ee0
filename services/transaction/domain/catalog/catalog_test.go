package catalog

import (
	"testing"

	"github.com/ghuser/bizzy/pkg/business"
)

func TestDefault(t *testing.T) {
	if got := len(Default.Types(business.Products)); got != 7 {
		t.Errorf("products: %d types, want 7", got)
	}
	if got := len(Default.Types(business.Services)); got != 7 {
		t.Errorf("services: %d types, want 7", got)
	}
	if !Default.Allows(business.Services, "Invoice Generation") {
		t.Error("services should allow Invoice Generation")
	}
	if Default.Allows(business.Products, "Service Booking") {
		t.Error("products must not allow Service Booking")
	}
}

func TestTypes_ReturnsCopy(t *testing.T) {
	types := Default.Types(business.Products)
	types[0] = "mutated"
	if Default.Types(business.Products)[0] == "mutated" {
		t.Fatal("Types must not expose the catalog's backing slice")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load([]byte("Products: [a]\n")); err == nil {
		t.Error("expected error when a sector is missing")
	}
	if _, err := Load([]byte("Products: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
