package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/errhttp"
	"github.com/ghuser/bizzy/pkg/httpx"
	appsvcs "github.com/ghuser/bizzy/services/document/application/services"
	documentdomain "github.com/ghuser/bizzy/services/document/domain"
	"github.com/ghuser/bizzy/services/document/domain/models"
)

// uploadFields maps multipart field names to the kind of file they carry.
var uploadFields = []struct {
	field string
	kind  models.Kind
}{
	{"documents", models.KindDocument},
	{"images", models.KindImage},
}

// UploadHandler handles POST /documents.
type UploadHandler struct {
	svc *appsvcs.Services
}

// NewUploadHandler returns an UploadHandler backed by the given services.
func NewUploadHandler(svc *appsvcs.Services) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Execute stores up to three documents and three images.
//
//	@Summary	Upload documents and images
//	@Tags		documents
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		documents	formData	file	false	"Up to 3 documents"
//	@Param		images		formData	file	false	"Up to 3 images"
//	@Success	201			{object}	DocumentListResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	401			{object}	ErrorResponse
//	@Failure	413			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/documents [post]
func (h *UploadHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := r.ParseMultipartForm(h.svc.MaxUploadBytes); err != nil {
		if httpx.BodyTooLarge(err) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		httpx.JSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	var uploads []appsvcs.Upload
	for _, f := range uploadFields {
		for _, fh := range r.MultipartForm.File[f.field] {
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
			uploads = append(uploads, appsvcs.Upload{
				Kind:        f.kind,
				Name:        fh.Filename,
				ContentType: contentType,
				Size:        fh.Size,
				Body:        body,
			})
		}
	}

	docs, err := h.svc.Document.Upload(r.Context(), userID, uploads)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, DocumentListResponse{Items: toDocumentResponses(docs)})
}

// ListHandler handles GET /documents.
type ListHandler struct {
	svc *appsvcs.Services
}

// NewListHandler returns a ListHandler backed by the given services.
func NewListHandler(svc *appsvcs.Services) *ListHandler {
	return &ListHandler{svc: svc}
}

// Execute lists the caller's files, newest first.
//
//	@Summary	List documents
//	@Tags		documents
//	@Produce	json
//	@Param		kind	query		string	false	"Filter by kind"	Enums(document, image)
//	@Success	200		{object}	DocumentListResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/documents [get]
func (h *ListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	var kind *models.Kind
	if v := r.URL.Query().Get("kind"); v != "" {
		k, err := models.ParseKind(v)
		if err != nil {
			errhttp.WriteError(w, fmt.Errorf("%w: %w", documentdomain.ErrInvalidDocument, err))
			return
		}
		kind = &k
	}

	docs, err := h.svc.Document.List(r.Context(), userID, kind)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DocumentListResponse{Items: toDocumentResponses(docs)})
}

// ContentHandler handles GET /documents/{id}/content.
type ContentHandler struct {
	svc *appsvcs.Services
}

// NewContentHandler returns a ContentHandler backed by the given services.
func NewContentHandler(svc *appsvcs.Services) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Execute streams the stored bytes as an attachment.
//
//	@Summary	Download document
//	@Tags		documents
//	@Produce	octet-stream
//	@Param		id	path		string	true	"Document ID"
//	@Success	200	{file}		binary
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/documents/{id}/content [get]
func (h *ContentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	d, data, err := h.svc.Document.Download(r.Context(), userID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.Name}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DeleteHandler handles DELETE /documents/{id}.
type DeleteHandler struct {
	svc *appsvcs.Services
}

// NewDeleteHandler returns a DeleteHandler backed by the given services.
func NewDeleteHandler(svc *appsvcs.Services) *DeleteHandler {
	return &DeleteHandler{svc: svc}
}

// Execute deletes the stored bytes and then the metadata.
//
//	@Summary	Delete document
//	@Tags		documents
//	@Param		id	path	string	true	"Document ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/documents/{id} [delete]
func (h *DeleteHandler) Execute(w http.ResponseWriter, r *http.Request) {
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
	if err := h.svc.Document.Delete(r.Context(), userID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
