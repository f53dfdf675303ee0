package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/services/transaction/domain/models"
	domainsvcs "github.com/ghuser/bizzy/services/transaction/domain/services"
)

// TransactionRequest is the request body for POST /transactions and PUT /transactions/{id}.
// item_id is required for service businesses.
type TransactionRequest struct {
	Type             string     `json:"type"              validate:"required,max=100"                example:"Product Order"`
	Category         string     `json:"category"          validate:"required,oneof=Income Expense"   example:"Income"`
	ItemID           *uuid.UUID `json:"item_id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Amount           string     `json:"amount"            validate:"required,money"                  example:"259.98"`
	Quantity         int        `json:"quantity"          validate:"gte=0,lte=2147483647"            example:"2"`
	CustomerName     string     `json:"customer_name"     validate:"required,max=255"                example:"Chipo Moyo"`
	CustomerPhone    string     `json:"customer_phone"    validate:"required,phone,max=50"           example:"+263771234567"`
	CustomerAge      *int       `json:"customer_age"      validate:"omitempty,gte=0,lte=150"         example:"34"`
	CustomerGender   string     `json:"customer_gender"   validate:"max=50"                          example:"Female"`
	CustomerLocation string     `json:"customer_location" validate:"max=255"                         example:"Harare"`
} // @name TransactionRequest

func (r *TransactionRequest) params() models.TransactionParams {
	return models.TransactionParams{
		Type:     r.Type,
		Category: r.Category,
		ItemID:   r.ItemID,
		Amount:   decimal.RequireFromString(r.Amount), // checked by the money validator
		Quantity: r.Quantity,
		Customer: models.Customer{
			Name:     r.CustomerName,
			Phone:    r.CustomerPhone,
			Age:      r.CustomerAge,
			Gender:   r.CustomerGender,
			Location: r.CustomerLocation,
		},
	}
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID               uuid.UUID  `json:"id"                          example:"123e4567-e89b-12d3-a456-426614174000"`
	Sector           string     `json:"sector"                      example:"Products"`
	Type             string     `json:"type"                        example:"Product Order"`
	Category         string     `json:"category"                    example:"Income"`
	ItemID           *uuid.UUID `json:"item_id,omitempty"           example:"123e4567-e89b-12d3-a456-426614174000"`
	ItemName         string     `json:"item_name,omitempty"         example:"Cement 50kg"`
	Amount           string     `json:"amount"                      example:"259.98"`
	Quantity         int        `json:"quantity"                    example:"2"`
	CustomerName     string     `json:"customer_name"               example:"Chipo Moyo"`
	CustomerPhone    string     `json:"customer_phone"              example:"+263771234567"`
	CustomerAge      *int       `json:"customer_age,omitempty"      example:"34"`
	CustomerGender   string     `json:"customer_gender,omitempty"   example:"Female"`
	CustomerLocation string     `json:"customer_location,omitempty" example:"Harare"`
	CreatedAt        time.Time  `json:"created_at"                  example:"2024-01-15T10:30:00Z"`
	UpdatedAt        time.Time  `json:"updated_at"                  example:"2024-01-15T10:30:00Z"`
} // @name TransactionResponse

// TransactionPage is a page of transactions.
type TransactionPage = httpx.Page[TransactionResponse] // @name TransactionPage

// TypesResponse lists the transaction types of the caller's sector.
type TypesResponse struct {
	Types []string `json:"types" example:"Product Order,Product Delivery"`
} // @name TransactionTypesResponse

// SummaryResponse totals the caller's transactions.
type SummaryResponse struct {
	Income    string `json:"income"     example:"1520.00"`
	Expense   string `json:"expense"    example:"430.50"`
	NetProfit string `json:"net_profit" example:"1089.50"`
} // @name FinanceSummaryResponse

// TrendPoint is one bucket of a trend.
type TrendPoint struct {
	Label   string    `json:"label"   example:"Mon"`
	Start   time.Time `json:"start"   example:"2024-01-15T00:00:00Z"`
	End     time.Time `json:"end"     example:"2024-01-16T00:00:00Z"`
	Income  string    `json:"income"  example:"320.00"`
	Expense string    `json:"expense" example:"45.00"`
} // @name TrendPoint

// TrendResponse is the income and expense trend over a period.
type TrendResponse struct {
	Period string       `json:"period" example:"week"`
	Points []TrendPoint `json:"points"`
} // @name TrendResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"transaction not found"`
} // @name ErrorResponse

// ToSummaryResponse renders a finance summary.
func ToSummaryResponse(s domainsvcs.Summary) SummaryResponse {
	return SummaryResponse{
		Income:    s.Income.StringFixed(2),
		Expense:   s.Expense.StringFixed(2),
		NetProfit: s.Net().StringFixed(2),
	}
}

func toTrendResponse(period domainsvcs.Period, buckets []domainsvcs.Bucket) TrendResponse {
	points := make([]TrendPoint, len(buckets))
	for i, b := range buckets {
		points[i] = TrendPoint{
			Label:   b.Label,
			Start:   b.Start,
			End:     b.End,
			Income:  b.Income.StringFixed(2),
			Expense: b.Expense.StringFixed(2),
		}
	}
	return TrendResponse{Period: string(period), Points: points}
}

func toTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		Sector:           string(t.Sector),
		Type:             t.Type,
		Category:         string(t.Category),
		ItemID:           t.ItemID,
		ItemName:         t.ItemName,
		Amount:           t.Amount.StringFixed(2),
		Quantity:         t.Quantity,
		CustomerName:     t.Customer.Name,
		CustomerPhone:    t.Customer.Phone,
		CustomerAge:      t.Customer.Age,
		CustomerGender:   t.Customer.Gender,
		CustomerLocation: t.Customer.Location,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
