package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/document/domain/models"
)

// DocumentResponse is the public view of a stored file. Bytes are served by
// GET /documents/{id}/content.
type DocumentResponse struct {
	ID          uuid.UUID `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	Kind        string    `json:"kind"         example:"image"`
	Name        string    `json:"name"         example:"shopfront.jpg"`
	Size        int64     `json:"size"         example:"20480"`
	ContentType string    `json:"content_type" example:"image/jpeg"`
	UploadedAt  time.Time `json:"uploaded_at"  example:"2024-01-15T10:30:00Z"`
} // @name DocumentResponse

// DocumentListResponse wraps a list of files.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
} // @name DocumentListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"document not found"`
} // @name ErrorResponse

func toDocumentResponses(docs []*models.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = DocumentResponse{
			ID:          d.ID,
			Kind:        string(d.Kind),
			Name:        d.Name,
			Size:        d.Size,
			ContentType: d.ContentType,
			UploadedAt:  d.UploadedAt,
		}
	}
	return out
}
