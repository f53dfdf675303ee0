package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizzy/pkg/validator"
	appsvcs "github.com/ghuser/bizzy/services/assistant/application/services"
	assistantdomain "github.com/ghuser/bizzy/services/assistant/domain"
	"github.com/ghuser/bizzy/services/assistant/domain/models"
	"github.com/ghuser/bizzy/services/assistant/domain/repositories"
)

// AskHandler handles POST /assistant/messages.
type AskHandler struct {
	svc *appsvcs.Services
}

// NewAskHandler returns an AskHandler backed by the given services.
func NewAskHandler(svc *appsvcs.Services) *AskHandler {
	return &AskHandler{svc: svc}
}

// Execute asks the assistant a question. The question is kept in the history
// even when the assistant cannot be reached.
//
//	@Summary	Ask the assistant
//	@Tags		assistant
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AskRequest	true	"Question"
//	@Success	201		{object}	ExchangeResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Router		/assistant/messages [post]
func (h *AskHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AskRequest](w, r)
	if !ok {
		return
	}

	ex, err := h.svc.Assistant.Ask(r.Context(), userID, req.Message)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, ExchangeResponse{
		Question: toMessageResponse(ex.Question),
		Reply:    toMessageResponse(ex.Reply),
	})
}

// AttachHandler handles POST /assistant/attachments.
type AttachHandler struct {
	svc *appsvcs.Services
}

// NewAttachHandler returns an AttachHandler backed by the given services.
func NewAttachHandler(svc *appsvcs.Services) *AttachHandler {
	return &AttachHandler{svc: svc}
}

// Execute stores one image or document and adds it to the chat history.
// The assistant is not asked about it.
//
//	@Summary	Attach a file to the chat
//	@Tags		assistant
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		type	formData	string	true	"Attachment type"	Enums(image, document)
//	@Param		file	formData	file	true	"The file"
//	@Success	201		{object}	MessageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	413		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/assistant/attachments [post]
func (h *AttachHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.svc.MaxAttachmentBytes)
	if err := r.ParseMultipartForm(h.svc.MaxAttachmentBytes); err != nil {
		if httpx.BodyTooLarge(err) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "attachment too large")
			return
		}
		httpx.JSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	typ, err := models.ParseAttachmentType(r.FormValue("type"))
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("%w: %w", assistantdomain.ErrInvalidMessage, err))
		return
	}
	files := r.MultipartForm.File["file"]
	if len(files) != 1 {
		errhttp.WriteError(w, fmt.Errorf("%w: exactly one file is required, got %d", assistantdomain.ErrInvalidMessage, len(files)))
		return
	}
	fh := files[0]
	body, err := fh.Open()
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unreadable file "+fh.Filename)
		return
	}
	defer body.Close() //nolint:errcheck

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	msg, err := h.svc.Assistant.Attach(r.Context(), userID, typ, appsvcs.File{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        body,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toMessageResponse(msg))
}

// HistoryHandler handles GET /assistant/messages.
type HistoryHandler struct {
	svc *appsvcs.Services
}

// NewHistoryHandler returns a HistoryHandler backed by the given services.
func NewHistoryHandler(svc *appsvcs.Services) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// Execute returns the caller's chat history, oldest first.
//
//	@Summary	Chat history
//	@Tags		assistant
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (max 200)"
//	@Param		offset	query		int	false	"Messages to skip"
//	@Success	200		{object}	MessagePage
//	@Failure	401		{object}	ErrorResponse
//	@Router		/assistant/messages [get]
func (h *HistoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	limit, offset := httpx.Pagination(r)

	msgs, total, err := h.svc.Assistant.History(r.Context(), userID, repositories.QueryOpts{Limit: limit, Offset: offset})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		items[i] = toMessageResponse(m)
	}
	httpx.JSON(w, http.StatusOK, MessagePage{Items: items, Total: total, Limit: limit, Offset: offset})
}

// RecommendationHandler handles GET /assistant/recommendation.
type RecommendationHandler struct {
	svc *appsvcs.Services
}

// NewRecommendationHandler returns a RecommendationHandler backed by the given services.
func NewRecommendationHandler(svc *appsvcs.Services) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// Execute fetches a marketing recommendation on demand.
//
//	@Summary	Marketing recommendation
//	@Tags		assistant
//	@Produce	json
//	@Success	200	{object}	RecommendationResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	502	{object}	ErrorResponse
//	@Router		/assistant/recommendation [get]
func (h *RecommendationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	rec, err := h.svc.Assistant.Recommend(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, RecommendationResponse{Recommendation: rec})
}
