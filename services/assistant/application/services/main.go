package services

import (
	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/services/assistant/infrastructure/persistence/postgres"
	"github.com/ghuser/bizzy/services/assistant/infrastructure/remote"
	documentsvcs "github.com/ghuser/bizzy/services/document/application/services"
)

// Services is the application-layer service container for the assistant context.
type Services struct {
	Assistant *AssistantService
	// MaxAttachmentBytes caps the multipart form of one attachment request.
	MaxAttachmentBytes int64
}

// New wires the assistant services with the configured endpoints. Chat
// attachments are kept by documents; pass nil where files are never accepted.
func New(a *app.Application, documents *documentsvcs.DocumentService) *Services {
	client := remote.NewClient(remote.Config{
		ChatURL:           a.Config.AssistantChatURL,
		RecommendationURL: a.Config.AssistantRecommendationURL,
		Timeout:           a.Config.AssistantTimeout,
		MaxRetries:        a.Config.AssistantMaxRetries,
	})
	var attachments Attachments
	if documents != nil {
		attachments = DocumentAttachments(documents)
	}
	return &Services{
		Assistant:          NewAssistantService(postgres.NewMessageRepository(a.Db), client, attachments),
		MaxAttachmentBytes: a.Config.DocumentMaxBytes,
	}
}
