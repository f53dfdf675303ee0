package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested record does not exist for the user.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrItemAlreadyExists indicates another record already holds the generated code.
	ErrItemAlreadyExists = errors.New("inventory code already in use")

	// ErrInvalidItem indicates the record violates domain constraints.
	ErrInvalidItem = errors.New("invalid inventory item")

	// ErrInsufficientStock indicates a stock adjustment would go below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStockNotTracked indicates a stock operation on a service record.
	ErrStockNotTracked = errors.New("stock is not tracked for services")
)
