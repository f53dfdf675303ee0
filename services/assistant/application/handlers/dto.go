package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/services/assistant/domain/models"
)

// AskRequest is the request body for POST /assistant/messages.
type AskRequest struct {
	Message string `json:"message" validate:"required,max=4000" example:"Which product should I restock first?"`
} // @name AskRequest

// MessageResponse is one chat message. Image and document messages carry the
// attached file's name as text and a URI to download it.
type MessageResponse struct {
	ID         uuid.UUID  `json:"id"                    example:"123e4567-e89b-12d3-a456-426614174000"`
	Sender     string     `json:"sender"                example:"bot"`
	Type       string     `json:"type"                  example:"text"`
	Text       string     `json:"text"                  example:"Cement is below its threshold; restock it first."`
	DocumentID *uuid.UUID `json:"document_id,omitempty" example:"9b2f6c1e-4d7a-4e8b-a1c3-5f6e7d8c9b0a"`
	URI        string     `json:"uri,omitempty"         example:"/api/documents/9b2f6c1e-4d7a-4e8b-a1c3-5f6e7d8c9b0a/content"`
	CreatedAt  time.Time  `json:"created_at"            example:"2024-01-15T10:30:00Z"`
} // @name MessageResponse

// ExchangeResponse pairs a question with the assistant's reply.
type ExchangeResponse struct {
	Question MessageResponse `json:"question"`
	Reply    MessageResponse `json:"reply"`
} // @name ExchangeResponse

// MessagePage is a page of chat history, oldest first.
type MessagePage = httpx.Page[MessageResponse] // @name MessagePage

// RecommendationResponse carries a marketing recommendation.
type RecommendationResponse struct {
	Recommendation string `json:"recommendation" example:"Offer a 5% discount on bulk cement orders this weekend."`
} // @name RecommendationResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"assistant unavailable"`
} // @name ErrorResponse

func toMessageResponse(m *models.Message) MessageResponse {
	resp := MessageResponse{
		ID:         m.ID,
		Sender:     string(m.Sender),
		Type:       string(m.Type),
		Text:       m.Text,
		DocumentID: m.DocumentID,
		CreatedAt:  m.CreatedAt,
	}
	if m.DocumentID != nil {
		resp.URI = "/api/documents/" + m.DocumentID.String() + "/content"
	}
	return resp
}
