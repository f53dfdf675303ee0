package handlers

import (
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizzy/pkg/validator"
	appsvcs "github.com/ghuser/bizzy/services/inventory/application/services"
)

// CreateItemHandler handles POST /inventory.
type CreateItemHandler struct {
	svc *appsvcs.Services
}

// NewCreateItemHandler returns a CreateItemHandler backed by the given services.
func NewCreateItemHandler(svc *appsvcs.Services) *CreateItemHandler {
	return &CreateItemHandler{svc: svc}
}

// Execute creates a product or service with the next sequential code.
//
//	@Summary		Create inventory record
//	@Description	Assigns the next code in the caller's collection (P#### for products, S#### for services).
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Inventory record"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/inventory [post]
func (h *CreateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.Create(r.Context(), userID, req.params())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
