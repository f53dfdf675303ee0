package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizzy/pkg/validator"
	appsvcs "github.com/ghuser/bizzy/services/account/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"  example:"tendai@repairs.example"`
	Password string `json:"password" validate:"required"  example:"s3cret-pass"`
} // @name LoginRequest

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewLoginHandler returns a LoginHandler that starts sessions in store.
func NewLoginHandler(svc *appsvcs.Services, store sessions.Store) *LoginHandler {
	return &LoginHandler{svc: svc, store: store}
}

// Execute verifies credentials and starts a session.
//
//	@Summary		Log in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	ProfileResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Account.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.StartSession(w, r, h.store, account.ID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProfile(account))
}

// LogoutHandler handles POST /auth/logout.
type LogoutHandler struct {
	store sessions.Store
}

// NewLogoutHandler returns a LogoutHandler that expires sessions in store.
func NewLogoutHandler(store sessions.Store) *LogoutHandler {
	return &LogoutHandler{store: store}
}

// Execute ends the current session.
//
//	@Summary	Log out
//	@Tags		auth
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.EndSession(w, r, h.store); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
