package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	transactiondomain "github.com/ghuser/bizzy/services/transaction/domain"
	"github.com/ghuser/bizzy/services/transaction/domain/models"
)

// Wednesday.
var now = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func txn(category models.Category, amount string, at time.Time) *models.Transaction {
	return &models.Transaction{
		Category:  category,
		Amount:    decimal.RequireFromString(amount),
		CreatedAt: at,
	}
}

func TestParsePeriod(t *testing.T) {
	if p, err := ParsePeriod(""); err != nil || p != Week {
		t.Fatalf("empty period = %q, %v; want week", p, err)
	}
	if _, err := ParsePeriod("decade"); !errors.Is(err, transactiondomain.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestBuckets_Labels(t *testing.T) {
	tests := []struct {
		period Period
		first  string
		last   string
		count  int
	}{
		{Week, "Thu", "Wed", 7},
		{Month, "Week 1", "Week 4", 4},
		{Year, "Nov", "Oct", 12},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			b := Buckets(tt.period, now)
			if len(b) != tt.count {
				t.Fatalf("got %d buckets, want %d", len(b), tt.count)
			}
			if b[0].Label != tt.first || b[len(b)-1].Label != tt.last {
				t.Fatalf("labels %q..%q, want %q..%q", b[0].Label, b[len(b)-1].Label, tt.first, tt.last)
			}
			if !b[len(b)-1].End.After(now) {
				t.Fatal("last bucket must contain now")
			}
			for i := 1; i < len(b); i++ {
				if !b[i].Start.Equal(b[i-1].End) {
					t.Fatalf("bucket %d does not start where %d ends", i, i-1)
				}
			}
		})
	}
}

func TestTrend_Week(t *testing.T) {
	txns := []*models.Transaction{
		txn(models.Income, "100.00", now.Add(-time.Hour)),
		txn(models.Income, "50.50", now.Add(-2*time.Hour)),
		txn(models.Expense, "30.00", now.AddDate(0, 0, -1)),
		txn(models.Income, "999.00", now.AddDate(0, 0, -7)),
	}

	b := Trend(Week, txns, now)
	if got := b[6].Income.StringFixed(2); got != "150.50" {
		t.Errorf("today income = %s, want 150.50", got)
	}
	if got := b[5].Expense.StringFixed(2); got != "30.00" {
		t.Errorf("yesterday expense = %s, want 30.00", got)
	}
	total := decimal.Zero
	for _, bucket := range b {
		total = total.Add(bucket.Income)
	}
	if got := total.StringFixed(2); got != "150.50" {
		t.Errorf("total income = %s; transactions outside the window must be ignored", got)
	}
}

func TestTrend_Year(t *testing.T) {
	txns := []*models.Transaction{
		txn(models.Income, "10", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)),
		txn(models.Income, "20", time.Date(2025, time.November, 30, 23, 59, 0, 0, time.UTC)),
		txn(models.Income, "40", time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)),
	}
	b := Trend(Year, txns, now)
	if !b[11].Income.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Oct income = %s", b[11].Income)
	}
	if !b[0].Income.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Nov income = %s", b[0].Income)
	}
}

func TestSummary(t *testing.T) {
	var s Summary
	s = s.Add(txn(models.Income, "120.10", now))
	s = s.Add(txn(models.Expense, "20.05", now))
	if got := s.Net().StringFixed(2); got != "100.05" {
		t.Fatalf("net = %s, want 100.05", got)
	}

	fromTotals := SummaryFromTotals(map[models.Category]decimal.Decimal{
		models.Expense: decimal.NewFromInt(5),
	})
	if !fromTotals.Income.IsZero() || fromTotals.Net().String() != "-5" {
		t.Fatalf("unexpected summary %+v", fromTotals)
	}
}
