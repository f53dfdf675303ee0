package handlers

import (
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizzy/pkg/validator"
	appsvcs "github.com/ghuser/bizzy/services/account/application/services"
)

// UpdateProfileRequest is the request body for PUT /profile.
type UpdateProfileRequest struct {
	Name     string `json:"name"     validate:"required,max=255"   example:"Tendai & Sons"`
	Location string `json:"location" validate:"omitempty,max=255"  example:"Harare"`
	Workers  int    `json:"workers"  validate:"gte=0,lte=1000000"  example:"5"`
} // @name UpdateProfileRequest

// GetProfileHandler handles GET /profile.
type GetProfileHandler struct {
	svc *appsvcs.Services
}

// NewGetProfileHandler returns a GetProfileHandler backed by the given services.
func NewGetProfileHandler(svc *appsvcs.Services) *GetProfileHandler {
	return &GetProfileHandler{svc: svc}
}

// Execute returns the signed-in account.
//
//	@Summary	Get profile
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	ProfileResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/profile [get]
func (h *GetProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	account, err := h.svc.Account.Get(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProfile(account))
}

// UpdateProfileHandler handles PUT /profile.
type UpdateProfileHandler struct {
	svc *appsvcs.Services
}

// NewUpdateProfileHandler returns an UpdateProfileHandler backed by the given services.
func NewUpdateProfileHandler(svc *appsvcs.Services) *UpdateProfileHandler {
	return &UpdateProfileHandler{svc: svc}
}

// Execute updates name, location and workers.
//
//	@Summary		Update profile
//	@Description	The business sector cannot be changed.
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"Profile"
//	@Success		200		{object}	ProfileResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/profile [put]
func (h *UpdateProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Account.UpdateProfile(r.Context(), userID, appsvcs.ProfileInput{
		Name:     req.Name,
		Location: req.Location,
		Workers:  req.Workers,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProfile(account))
}
