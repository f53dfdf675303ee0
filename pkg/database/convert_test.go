package database

import (
	"errors"
	"math"
	"testing"
)

func TestInt32(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    int32
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"max", math.MaxInt32, math.MaxInt32, false},
		{"min", math.MinInt32, math.MinInt32, false},
		{"wraps to one", 4294967297, 0, true},
		{"just above max", math.MaxInt32 + 1, 0, true},
		{"just below min", math.MinInt32 - 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int32(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("Int32(%d): expected ErrOutOfRange, got %d, %v", tt.in, got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("Int32(%d) = %d, %v; want %d", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestNullInt32(t *testing.T) {
	if v, err := NullInt32(nil); err != nil || v.Valid {
		t.Fatalf("NullInt32(nil) = %+v, %v", v, err)
	}
	n := 34
	if v, err := NullInt32(&n); err != nil || !v.Valid || v.Int32 != 34 {
		t.Fatalf("NullInt32(34) = %+v, %v", v, err)
	}
	big := 4294967297
	if _, err := NullInt32(&big); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestPageArgs(t *testing.T) {
	limit, offset := PageArgs(50, 4294967297)
	if limit != 50 || offset != math.MaxInt32 {
		t.Fatalf("PageArgs = %d, %d", limit, offset)
	}
	if limit, offset = PageArgs(-1, -5); limit != 0 || offset != 0 {
		t.Fatalf("negative PageArgs = %d, %d", limit, offset)
	}
}
