package handlers

import (
	"net/http"

	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizzy/pkg/validator"
	appsvcs "github.com/ghuser/bizzy/services/account/application/services"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=255"           example:"Tendai Repairs"`
	Email    string `json:"email"    validate:"required,email"             example:"tendai@repairs.example"`
	Password string `json:"password" validate:"required,min=8,max=72"      example:"s3cret-pass"`
	Sex      string `json:"sex"      validate:"omitempty,max=32"           example:"Female"`
	Location string `json:"location" validate:"omitempty,max=255"          example:"Mutare"`
	Workers  int    `json:"workers"  validate:"gte=0,lte=1000000"          example:"3"`
	Sector   string `json:"sector"   validate:"required,sector"            example:"Services"`
} // @name RegisterRequest

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	svc *appsvcs.Services
}

// NewRegisterHandler returns a RegisterHandler backed by the given services.
func NewRegisterHandler(svc *appsvcs.Services) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Execute registers a business account.
//
//	@Summary		Register
//	@Description	Creates an account. The business sector is fixed after registration.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration"
//	@Success		201		{object}	ProfileResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Account.Register(r.Context(), appsvcs.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Sex:      req.Sex,
		Location: req.Location,
		Workers:  req.Workers,
		Sector:   req.Sector,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProfile(account))
}
