package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	appsvcs "github.com/ghuser/bizzy/services/dashboard/application/services"
	taskhandlers "github.com/ghuser/bizzy/services/task/application/handlers"
	txhandlers "github.com/ghuser/bizzy/services/transaction/application/handlers"
)

// LowStockItem is a product at or below its threshold.
type LowStockItem struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string    `json:"code"      example:"P0003"`
	Name      string    `json:"name"      example:"Cement 50kg"`
	Quantity  int       `json:"quantity"  example:"2"`
	Threshold int       `json:"threshold" example:"5"`
} // @name DashboardLowStockItem

// DashboardResponse is the home screen summary.
type DashboardResponse struct {
	Tasks         taskhandlers.SummaryResponse `json:"tasks"`
	Finance       txhandlers.SummaryResponse   `json:"finance"`
	LowStockCount int                          `json:"low_stock_count" example:"1"`
	LowStock      []LowStockItem               `json:"low_stock"`
} // @name DashboardResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
} // @name ErrorResponse

// DashboardHandler handles GET /dashboard.
type DashboardHandler struct {
	svc *appsvcs.Services
}

// NewDashboardHandler returns a DashboardHandler backed by the given services.
func NewDashboardHandler(svc *appsvcs.Services) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Execute returns the task summary, finance summary and low-stock products.
//
//	@Summary	Dashboard
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	DashboardResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/dashboard [get]
func (h *DashboardHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	snap, err := h.svc.Dashboard.Snapshot(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	low := make([]LowStockItem, 0, len(snap.LowStock))
	for _, item := range snap.LowStock {
		if item.Stock == nil {
			continue
		}
		low = append(low, LowStockItem{
			ID:        item.ID,
			Code:      item.Code,
			Name:      item.Name,
			Quantity:  item.Stock.Quantity,
			Threshold: item.Stock.Threshold,
		})
	}
	httpx.JSON(w, http.StatusOK, DashboardResponse{
		Tasks:         taskhandlers.ToSummaryResponse(snap.Tasks),
		Finance:       txhandlers.ToSummaryResponse(snap.Finance),
		LowStockCount: len(low),
		LowStock:      low,
	})
}
