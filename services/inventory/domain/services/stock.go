// Package services holds inventory rules that span more than one field of an item.
package services

import (
	"fmt"

	inventorydomain "github.com/ghuser/bizzy/services/inventory/domain"
	"github.com/ghuser/bizzy/services/inventory/domain/models"
)

// Adjust applies delta to stock. It reports whether the result crossed from
// above the threshold to at or below it. A result below zero is refused.
func Adjust(stock models.Stock, delta int) (models.Stock, bool, error) {
	next := stock
	next.Quantity += delta
	if next.Quantity < 0 {
		return stock, false, fmt.Errorf("%w: %d on hand, %d requested", inventorydomain.ErrInsufficientStock, stock.Quantity, -delta)
	}
	if next.Quantity > models.MaxQuantity {
		return stock, false, fmt.Errorf("%w: quantity would exceed %d", inventorydomain.ErrInvalidItem, models.MaxQuantity)
	}
	return next, CrossedThreshold(&stock, &next), nil
}

// CrossedThreshold reports whether stock moved into the low range. A nil
// before means the item is new, so being low at all counts as crossing.
func CrossedThreshold(before, after *models.Stock) bool {
	if after == nil || !after.Low() {
		return false
	}
	return before == nil || !before.Low()
}
