package business

import (
	"errors"
	"testing"
)

func TestParseSector(t *testing.T) {
	tests := []struct {
		in      string
		want    Sector
		wantErr bool
	}{
		{"Products", Products, false},
		{"Services", Services, false},
		{"products", "", true},
		{"", "", true},
		{"Retail", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSector(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseSector(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidSector) {
			t.Fatalf("ParseSector(%q) error must wrap ErrInvalidSector", tt.in)
		}
		if got != tt.want {
			t.Fatalf("ParseSector(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSector_CodePrefix(t *testing.T) {
	if Products.CodePrefix() != "P" {
		t.Errorf("Products prefix = %q", Products.CodePrefix())
	}
	if Services.CodePrefix() != "S" {
		t.Errorf("Services prefix = %q", Services.CodePrefix())
	}
}

func TestSector_TracksStock(t *testing.T) {
	if !Products.TracksStock() || Services.TracksStock() {
		t.Fatal("only Products tracks stock")
	}
}
