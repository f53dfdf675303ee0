package handlers

import (
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizzy/pkg/validator"
	appsvcs "github.com/ghuser/bizzy/services/transaction/application/services"
	"github.com/ghuser/bizzy/services/transaction/domain/repositories"
)

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	svc *appsvcs.Services
}

// NewCreateTransactionHandler returns a CreateTransactionHandler backed by the given services.
func NewCreateTransactionHandler(svc *appsvcs.Services) *CreateTransactionHandler {
	return &CreateTransactionHandler{svc: svc}
}

// Execute records a transaction. Product sales reduce the item's stock.
//
//	@Summary		Record transaction
//	@Description	Income with an item and a quantity takes that quantity out of stock for product businesses.
//	@Tags			transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TransactionRequest	true	"Transaction"
//	@Success		201		{object}	TransactionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/transactions [post]
func (h *CreateTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[TransactionRequest](w, r)
	if !ok {
		return
	}

	t, err := h.svc.Transaction.Create(r.Context(), userID, req.params())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toTransactionResponse(t))
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	svc *appsvcs.Services
}

// NewListTransactionsHandler returns a ListTransactionsHandler backed by the given services.
func NewListTransactionsHandler(svc *appsvcs.Services) *ListTransactionsHandler {
	return &ListTransactionsHandler{svc: svc}
}

// Execute lists transactions, newest first.
//
//	@Summary	List transactions
//	@Tags		transactions
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (max 200)"
//	@Param		offset	query		int	false	"Records to skip"
//	@Success	200		{object}	TransactionPage
//	@Failure	401		{object}	ErrorResponse
//	@Router		/transactions [get]
func (h *ListTransactionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	limit, offset := httpx.Pagination(r)

	txns, total, err := h.svc.Transaction.List(r.Context(), userID, repositories.QueryOpts{Limit: limit, Offset: offset})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		items[i] = toTransactionResponse(t)
	}
	httpx.JSON(w, http.StatusOK, TransactionPage{Items: items, Total: total, Limit: limit, Offset: offset})
}

// GetTransactionHandler handles GET /transactions/{id}.
type GetTransactionHandler struct {
	svc *appsvcs.Services
}

// NewGetTransactionHandler returns a GetTransactionHandler backed by the given services.
func NewGetTransactionHandler(svc *appsvcs.Services) *GetTransactionHandler {
	return &GetTransactionHandler{svc: svc}
}

// Execute returns one transaction.
//
//	@Summary	Get transaction
//	@Tags		transactions
//	@Produce	json
//	@Param		id	path		string	true	"Transaction ID"
//	@Success	200	{object}	TransactionResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/transactions/{id} [get]
func (h *GetTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	t, err := h.svc.Transaction.Get(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTransactionResponse(t))
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	svc *appsvcs.Services
}

// NewUpdateTransactionHandler returns an UpdateTransactionHandler backed by the given services.
func NewUpdateTransactionHandler(svc *appsvcs.Services) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{svc: svc}
}

// Execute replaces the editable fields of a transaction. Stock is not adjusted.
//
//	@Summary	Update transaction
//	@Tags		transactions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Transaction ID"
//	@Param		request	body		TransactionRequest	true	"Transaction"
//	@Success	200		{object}	TransactionResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/transactions/{id} [put]
func (h *UpdateTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
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
	req, ok := pkgvalidator.ValidateRequest[TransactionRequest](w, r)
	if !ok {
		return
	}

	t, err := h.svc.Transaction.Update(r.Context(), userID, id, req.params())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTransactionResponse(t))
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	svc *appsvcs.Services
}

// NewDeleteTransactionHandler returns a DeleteTransactionHandler backed by the given services.
func NewDeleteTransactionHandler(svc *appsvcs.Services) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{svc: svc}
}

// Execute deletes a transaction.
//
//	@Summary	Delete transaction
//	@Tags		transactions
//	@Param		id	path	string	true	"Transaction ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/transactions/{id} [delete]
func (h *DeleteTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
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
	if err := h.svc.Transaction.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
