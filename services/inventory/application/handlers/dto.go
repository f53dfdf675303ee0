package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/services/inventory/domain/models"
)

// ItemRequest is the request body for POST /inventory and PUT /inventory/{id}.
// Quantity fields are required for product businesses and ignored for services.
type ItemRequest struct {
	Name              string `json:"name"               validate:"required,max=255"                example:"Cement 50kg"`
	Price             string `json:"price"              validate:"required,money"                  example:"129.99"`
	Quantity          *int   `json:"quantity"           validate:"omitempty,gte=0,lte=2147483647"  example:"40"`
	QuantityThreshold *int   `json:"quantity_threshold" validate:"omitempty,gte=0,lte=2147483647"  example:"10"`
} // @name ItemRequest

func (r *ItemRequest) params() models.ItemParams {
	return models.ItemParams{
		Name:      r.Name,
		Price:     decimal.RequireFromString(r.Price), // checked by the money validator
		Quantity:  r.Quantity,
		Threshold: r.QuantityThreshold,
	}
}

// ItemResponse is the public view of an inventory record.
type ItemResponse struct {
	ID                uuid.UUID `json:"id"                           example:"123e4567-e89b-12d3-a456-426614174000"`
	Code              string    `json:"code"                         example:"P0007"`
	Name              string    `json:"name"                         example:"Cement 50kg"`
	Price             string    `json:"price"                        example:"129.99"`
	Quantity          *int      `json:"quantity,omitempty"           example:"40"`
	QuantityThreshold *int      `json:"quantity_threshold,omitempty" example:"10"`
	LowStock          bool      `json:"low_stock"                    example:"false"`
	CreatedAt         time.Time `json:"created_at"                   example:"2024-01-15T10:30:00Z"`
	UpdatedAt         time.Time `json:"updated_at"                   example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ItemPage is a page of inventory records.
type ItemPage = httpx.Page[ItemResponse] // @name ItemPage

// NextCodeResponse previews the code the next record will receive.
type NextCodeResponse struct {
	Code string `json:"code" example:"P0008"`
} // @name NextCodeResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"inventory item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	resp := ItemResponse{
		ID:        item.ID,
		Code:      item.Code,
		Name:      item.Name,
		Price:     item.Price.StringFixed(2),
		LowStock:  item.IsLow(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.Stock != nil {
		q, t := item.Stock.Quantity, item.Stock.Threshold
		resp.Quantity, resp.QuantityThreshold = &q, &t
	}
	return resp
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}
