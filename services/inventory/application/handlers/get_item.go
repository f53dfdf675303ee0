package handlers

import (
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	appsvcs "github.com/ghuser/bizzy/services/inventory/application/services"
	"github.com/ghuser/bizzy/services/inventory/domain/repositories"
)

// GetItemHandler handles GET /inventory/{id}.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one inventory record.
//
//	@Summary	Get inventory record
//	@Tags		inventory
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"
//	@Success	200	{object}	ItemResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventory/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	id, err := httpx.UUIDParam(r, "id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	item, err := h.svc.Inventory.Get(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// ListItemsHandler handles GET /inventory.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists the caller's inventory ordered by code.
//
//	@Summary	List inventory
//	@Tags		inventory
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (max 200)"
//	@Param		offset	query		int	false	"Records to skip"
//	@Success	200		{object}	ItemPage
//	@Failure	401		{object}	ErrorResponse
//	@Router		/inventory [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	limit, offset := httpx.Pagination(r)

	items, total, err := h.svc.Inventory.List(r.Context(), userID, repositories.QueryOpts{Limit: limit, Offset: offset})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ItemPage{
		Items:  toItemResponses(items),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// NextCodeHandler handles GET /inventory/next-code.
type NextCodeHandler struct {
	svc *appsvcs.Services
}

// NewNextCodeHandler returns a NextCodeHandler backed by the given services.
func NewNextCodeHandler(svc *appsvcs.Services) *NextCodeHandler {
	return &NextCodeHandler{svc: svc}
}

// Execute previews the code the next record would get. Nothing is reserved.
//
//	@Summary	Preview next inventory code
//	@Tags		inventory
//	@Produce	json
//	@Success	200	{object}	NextCodeResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/inventory/next-code [get]
func (h *NextCodeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	code, err := h.svc.Inventory.PreviewNextCode(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, NextCodeResponse{Code: code})
}

// LowStockHandler handles GET /inventory/low-stock.
type LowStockHandler struct {
	svc *appsvcs.Services
}

// NewLowStockHandler returns a LowStockHandler backed by the given services.
func NewLowStockHandler(svc *appsvcs.Services) *LowStockHandler {
	return &LowStockHandler{svc: svc}
}

// Execute lists products at or below their threshold.
//
//	@Summary	List low-stock products
//	@Tags		inventory
//	@Produce	json
//	@Success	200	{array}		ItemResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/inventory/low-stock [get]
func (h *LowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items, err := h.svc.Inventory.LowStock(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
