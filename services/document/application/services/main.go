package services

import (
	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/services/document/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the document context.
type Services struct {
	Document *DocumentService
	// MaxUploadBytes caps the multipart form of one upload request.
	MaxUploadBytes int64
}

// New wires the document services. a.Storage must be set.
func New(a *app.Application) *Services {
	return &Services{
		Document:       NewDocumentService(postgres.NewDocumentRepository(a.Db), a.Storage, a.Logger),
		MaxUploadBytes: a.Config.DocumentMaxBytes,
	}
}
