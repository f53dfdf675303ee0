package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	assistantdomain "github.com/ghuser/bizzy/services/assistant/domain"
	"github.com/ghuser/bizzy/services/assistant/domain/models"
	"github.com/ghuser/bizzy/services/assistant/domain/repositories"
)

// Assistant is the external chat and recommendation endpoint pair.
// *remote.Client implements it.
type Assistant interface {
	Chat(ctx context.Context, userID uuid.UUID, question string) (string, error)
	Recommend(ctx context.Context, userID uuid.UUID) (string, error)
}

// removeTimeout bounds the removal of a file whose chat message was not saved.
const removeTimeout = 10 * time.Second

// Attachments stores files users attach to the chat.
type Attachments interface {
	// Store keeps the file and returns its document ID and cleaned name.
	Store(ctx context.Context, userID uuid.UUID, typ models.Type, f File) (uuid.UUID, string, error)
	Remove(ctx context.Context, userID, documentID uuid.UUID) error
}

// File is one attached file.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Exchange is a question and, when the assistant answered, its reply.
type Exchange struct {
	Question *models.Message
	Reply    *models.Message
}

// AssistantService keeps chat history around the external assistant.
type AssistantService struct {
	repo        repositories.MessageRepository
	assistant   Assistant
	attachments Attachments
}

// NewAssistantService returns an AssistantService. attachments may be nil in
// processes that never accept files; Attach then fails.
func NewAssistantService(repo repositories.MessageRepository, assistant Assistant, attachments Attachments) *AssistantService {
	return &AssistantService{repo: repo, assistant: assistant, attachments: attachments}
}

// Ask stores the question, asks the assistant and stores the reply. When the
// assistant is unavailable the question stays in the history and the error
// wraps ErrAssistantUnavailable.
func (s *AssistantService) Ask(ctx context.Context, userID uuid.UUID, text string) (*Exchange, error) {
	question, err := models.NewUserMessage(userID, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", assistantdomain.ErrInvalidMessage, err)
	}
	if err := s.repo.Save(ctx, question); err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}

	answer, err := s.assistant.Chat(ctx, userID, question.Text)
	if err != nil {
		return &Exchange{Question: question}, err
	}
	if answer == "" {
		answer = assistantdomain.FallbackReply
	}

	reply := models.NewBotMessage(userID, answer)
	if err := s.repo.Save(ctx, reply); err != nil {
		return &Exchange{Question: question}, fmt.Errorf("save reply: %w", err)
	}
	return &Exchange{Question: question, Reply: reply}, nil
}

// Attach stores a file and adds it to the chat as an image or document
// message from the user. Attachments are not sent to the assistant.
func (s *AssistantService) Attach(ctx context.Context, userID uuid.UUID, typ models.Type, f File) (*models.Message, error) {
	if s.attachments == nil {
		return nil, errors.New("attachments are not configured")
	}
	if _, err := models.ParseAttachmentType(string(typ)); err != nil {
		return nil, fmt.Errorf("%w: %w", assistantdomain.ErrInvalidMessage, err)
	}

	documentID, name, err := s.attachments.Store(ctx, userID, typ, f)
	if err != nil {
		return nil, fmt.Errorf("store attachment: %w", err)
	}
	msg, err := models.NewAttachmentMessage(userID, typ, documentID, name)
	if err == nil {
		err = s.repo.Save(ctx, msg)
	}
	if err != nil {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), removeTimeout)
		defer cancel()
		if rmErr := s.attachments.Remove(rctx, userID, documentID); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("remove attachment %s: %w", documentID, rmErr))
		}
		return nil, fmt.Errorf("save attachment message: %w", err)
	}
	return msg, nil
}

// History returns a page of the user's chat, oldest first.
func (s *AssistantService) History(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Message, int, error) {
	msgs, total, err := s.repo.History(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("chat history: %w", err)
	}
	return msgs, total, nil
}

// Recommend returns a marketing recommendation for the user, or
// FallbackRecommendation when the endpoint has none.
func (s *AssistantService) Recommend(ctx context.Context, userID uuid.UUID) (string, error) {
	rec, err := s.assistant.Recommend(ctx, userID)
	if err != nil {
		return "", err
	}
	if rec == "" {
		return assistantdomain.FallbackRecommendation, nil
	}
	return rec, nil
}
