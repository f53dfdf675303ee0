package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	transactiondomain "github.com/ghuser/bizzy/services/transaction/domain"
	"github.com/ghuser/bizzy/services/transaction/domain/models"
)

// Period selects the window and granularity of a trend.
type Period string

const (
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

// ParsePeriod validates s. An empty string means Week.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return Week, nil
	case Week, Month, Year:
		return Period(s), nil
	default:
		return "", fmt.Errorf("%w: %q", transactiondomain.ErrInvalidPeriod, s)
	}
}

// Bucket is one point of a trend: the income and expense recorded in [Start, End).
type Bucket struct {
	Label   string
	Start   time.Time
	End     time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Buckets returns the empty buckets of period ending with the one containing now,
// oldest first. Week is seven days labelled by weekday, Month is four seven-day
// weeks labelled "Week 1" to "Week 4", Year is twelve calendar months.
func Buckets(period Period, now time.Time) []Bucket {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var buckets []Bucket
	switch period {
	case Month:
		end := today.AddDate(0, 0, 1)
		for i := range 4 {
			start := end.AddDate(0, 0, -7*(4-i))
			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("Week %d", i+1),
				Start: start,
				End:   start.AddDate(0, 0, 7),
			})
		}
	case Year:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		for i := range 12 {
			start := first.AddDate(0, i-11, 0)
			buckets = append(buckets, Bucket{
				Label: start.Month().String()[:3],
				Start: start,
				End:   start.AddDate(0, 1, 0),
			})
		}
	default:
		for i := range 7 {
			start := today.AddDate(0, 0, i-6)
			buckets = append(buckets, Bucket{
				Label: start.Weekday().String()[:3],
				Start: start,
				End:   start.AddDate(0, 0, 1),
			})
		}
	}
	return buckets
}

// Trend sums txns into the buckets of period. Transactions outside the window
// are ignored.
func Trend(period Period, txns []*models.Transaction, now time.Time) []Bucket {
	buckets := Buckets(period, now)
	for _, t := range txns {
		at := t.CreatedAt.UTC()
		for i := range buckets {
			b := &buckets[i]
			if at.Before(b.Start) || !at.Before(b.End) {
				continue
			}
			switch t.Category {
			case models.Income:
				b.Income = b.Income.Add(t.Amount)
			case models.Expense:
				b.Expense = b.Expense.Add(t.Amount)
			}
			break
		}
	}
	return buckets
}
