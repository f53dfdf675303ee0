package domain

import "errors"

// Sentinel errors for the transaction domain. Use errors.Is() to check these.
var (
	// ErrTransactionNotFound indicates the requested transaction does not exist for the user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransaction indicates the transaction violates domain constraints.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrInvalidPeriod indicates an unknown trend period.
	ErrInvalidPeriod = errors.New("period must be week, month or year")
)
