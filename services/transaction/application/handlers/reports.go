package handlers

import (
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	appsvcs "github.com/ghuser/bizzy/services/transaction/application/services"
	domainsvcs "github.com/ghuser/bizzy/services/transaction/domain/services"
)

// TypesHandler handles GET /transactions/types.
type TypesHandler struct {
	svc *appsvcs.Services
}

// NewTypesHandler returns a TypesHandler backed by the given services.
func NewTypesHandler(svc *appsvcs.Services) *TypesHandler {
	return &TypesHandler{svc: svc}
}

// Execute lists the transaction types available to the caller's sector.
//
//	@Summary	Transaction types
//	@Tags		transactions
//	@Produce	json
//	@Success	200	{object}	TypesResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/transactions/types [get]
func (h *TypesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	types, err := h.svc.Transaction.Types(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, TypesResponse{Types: types})
}

// SummaryHandler handles GET /transactions/summary.
type SummaryHandler struct {
	svc *appsvcs.Services
}

// NewSummaryHandler returns a SummaryHandler backed by the given services.
func NewSummaryHandler(svc *appsvcs.Services) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// Execute totals income, expense and net profit.
//
//	@Summary	Finance summary
//	@Tags		transactions
//	@Produce	json
//	@Success	200	{object}	SummaryResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/transactions/summary [get]
func (h *SummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	sum, err := h.svc.Transaction.Summary(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ToSummaryResponse(sum))
}

// TrendHandler handles GET /transactions/trend.
type TrendHandler struct {
	svc *appsvcs.Services
}

// NewTrendHandler returns a TrendHandler backed by the given services.
func NewTrendHandler(svc *appsvcs.Services) *TrendHandler {
	return &TrendHandler{svc: svc}
}

// Execute buckets income and expense over the requested period.
//
//	@Summary	Finance trend
//	@Tags		transactions
//	@Produce	json
//	@Param		period	query		string	false	"week (default), month or year"	Enums(week, month, year)
//	@Success	200		{object}	TrendResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/transactions/trend [get]
func (h *TrendHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	period, err := domainsvcs.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	buckets, err := h.svc.Transaction.Trend(r.Context(), userID, period)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTrendResponse(period, buckets))
}
