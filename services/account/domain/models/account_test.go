package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/business"
)

func validParams() NewAccountParams {
	return NewAccountParams{
		Name:         "Amara Stores",
		Email:        "  Owner@Amara.Example ",
		PasswordHash: "$2a$10$hash",
		Sex:          "F",
		Location:     "Harare",
		Workers:      3,
		Sector:       "Products",
	}
}

func TestNewAccount(t *testing.T) {
	a, err := NewAccount(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if a.Email != "owner@amara.example" {
		t.Fatalf("email not normalized: %q", a.Email)
	}
	if a.Sector != business.Products {
		t.Fatalf("sector = %q", a.Sector)
	}
	if a.CreatedAt.IsZero() || !a.CreatedAt.Equal(a.UpdatedAt) {
		t.Fatal("timestamps must be set and equal on creation")
	}
}

func TestNewAccount_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewAccountParams)
	}{
		{"empty name", func(p *NewAccountParams) { p.Name = "  " }},
		{"long name", func(p *NewAccountParams) { p.Name = strings.Repeat("n", 256) }},
		{"bad email", func(p *NewAccountParams) { p.Email = "not-an-email" }},
		{"display-name email", func(p *NewAccountParams) { p.Email = "Bob <bob@x.example>" }},
		{"unknown sector", func(p *NewAccountParams) { p.Sector = "Retail" }},
		{"negative workers", func(p *NewAccountParams) { p.Workers = -1 }},
		{"too many workers", func(p *NewAccountParams) { p.Workers = MaxWorkers + 1 }},
		{"missing hash", func(p *NewAccountParams) { p.PasswordHash = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			if _, err := NewAccount(p); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAccount_UpdateProfile_KeepsSector(t *testing.T) {
	a, err := NewAccount(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.UpdateProfile("Amara Wholesale", "Bulawayo", 7); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if a.Name != "Amara Wholesale" || a.Location != "Bulawayo" || a.Workers != 7 {
		t.Fatalf("profile not updated: %+v", a)
	}
	if a.Sector != business.Products {
		t.Fatal("sector must not change")
	}
	if err := a.UpdateProfile("", "x", 1); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := a.UpdateProfile("ok", "x", -2); err == nil {
		t.Fatal("expected error for negative workers")
	}
}
