// Package services holds the transaction domain's pure calculations.
package services

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/services/transaction/domain/models"
)

// Summary is the all-time income and expense of a user.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net is income minus expense.
func (s Summary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// Add folds one transaction into the summary.
func (s Summary) Add(t *models.Transaction) Summary {
	switch t.Category {
	case models.Income:
		s.Income = s.Income.Add(t.Amount)
	case models.Expense:
		s.Expense = s.Expense.Add(t.Amount)
	}
	return s
}

// SummaryFromTotals builds a Summary from per-category sums.
func SummaryFromTotals(totals map[models.Category]decimal.Decimal) Summary {
	return Summary{Income: totals[models.Income], Expense: totals[models.Expense]}
}
