package database

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a Go int does not fit the INTEGER column it
// is written to.
var ErrOutOfRange = errors.New("value out of range for integer column")

// Int32 converts n for an INTEGER column. Values that would wrap are refused.
func Int32(n int) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return int32(n), nil
}

// NullInt32 is Int32 for a nullable column; nil maps to NULL.
func NullInt32(n *int) (sql.NullInt32, error) {
	if n == nil {
		return sql.NullInt32{}, nil
	}
	v, err := Int32(*n)
	if err != nil {
		return sql.NullInt32{}, err
	}
	return sql.NullInt32{Int32: v, Valid: true}, nil
}

// PageArgs converts LIMIT/OFFSET values, clamping them to [0, MaxInt32].
func PageArgs(limit, offset int) (int32, int32) {
	return clamp32(limit), clamp32(offset)
}

func clamp32(n int) int32 {
	switch {
	case n < 0:
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(n)
	}
}
