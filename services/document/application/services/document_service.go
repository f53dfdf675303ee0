package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/storage"
	documentdomain "github.com/ghuser/bizzy/services/document/domain"
	"github.com/ghuser/bizzy/services/document/domain/models"
	"github.com/ghuser/bizzy/services/document/domain/repositories"
)

// cleanupTimeout bounds the removal of objects left behind by a failed upload.
const cleanupTimeout = 10 * time.Second

// ObjectStore keeps file bytes. *storage.Store implements it.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader) (string, error)
	Get(ctx context.Context, objectURL string) ([]byte, error)
	Delete(ctx context.Context, objectURL string) error
}

// Upload is one incoming file.
type Upload struct {
	Kind        models.Kind
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DocumentService stores uploaded documents and images.
type DocumentService struct {
	repo  repositories.DocumentRepository
	store ObjectStore
	log   logger.Logger
}

// NewDocumentService returns a DocumentService.
func NewDocumentService(repo repositories.DocumentRepository, store ObjectStore, log logger.Logger) *DocumentService {
	return &DocumentService{repo: repo, store: store, log: log}
}

// Upload stores a batch of files. The batch is checked as a whole before
// anything is written; if a later file fails, files already stored by this
// batch are removed again.
func (s *DocumentService) Upload(ctx context.Context, userID uuid.UUID, uploads []Upload) ([]*models.Document, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no files", documentdomain.ErrInvalidDocument)
	}
	perKind := map[models.Kind]int{}
	docs := make([]*models.Document, len(uploads))
	for i, u := range uploads {
		perKind[u.Kind]++
		if perKind[u.Kind] > models.MaxFilesPerKind {
			return nil, fmt.Errorf("%w: at most %d %ss", documentdomain.ErrTooManyFiles, models.MaxFilesPerKind, u.Kind)
		}
		d, err := models.NewDocument(userID, u.Kind, u.Name, u.ContentType, u.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", documentdomain.ErrInvalidDocument, err)
		}
		docs[i] = d
	}

	for i, d := range docs {
		if err := s.put(ctx, d, uploads[i].Body); err != nil {
			s.rollback(ctx, docs[:i])
			return nil, err
		}
	}
	return docs, nil
}

func (s *DocumentService) put(ctx context.Context, d *models.Document, body io.Reader) error {
	objectURL, err := s.store.Put(ctx, d.Key(), body)
	if err != nil {
		return fmt.Errorf("store %s: %w", d.Name, err)
	}
	d.StorageURL = objectURL
	if err := s.repo.Save(ctx, d); err != nil {
		cctx, cancel := cleanupContext(ctx)
		defer cancel()
		if delErr := s.store.Delete(cctx, objectURL); delErr != nil {
			s.log.ErrorContext(cctx, "remove orphaned object", "url", objectURL, "error", delErr)
		}
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *DocumentService) rollback(ctx context.Context, docs []*models.Document) {
	cctx, cancel := cleanupContext(ctx)
	defer cancel()
	for _, d := range docs {
		if err := s.delete(cctx, d); err != nil {
			s.log.ErrorContext(cctx, "roll back upload", "document_id", d.ID, "error", err)
		}
	}
}

// cleanupContext keeps ctx values but not its cancellation, since a cancelled
// request is the usual reason a batch is being rolled back.
func cleanupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
}

// List returns the user's files, newest first. A nil kind lists both kinds.
func (s *DocumentService) List(ctx context.Context, userID uuid.UUID, kind *models.Kind) ([]*models.Document, error) {
	docs, err := s.repo.FindByUserID(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Download returns the metadata and bytes of a file.
func (s *DocumentService) Download(ctx context.Context, userID, id uuid.UUID) (*models.Document, []byte, error) {
	d, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get document: %w", err)
	}
	data, err := s.store.Get(ctx, d.StorageURL)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, nil, fmt.Errorf("%w: stored bytes are gone", documentdomain.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read document: %w", err)
	}
	return d, data, nil
}

// Delete removes the stored bytes, then the metadata.
func (s *DocumentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	d, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}
	return s.delete(ctx, d)
}

func (s *DocumentService) delete(ctx context.Context, d *models.Document) error {
	if err := s.store.Delete(ctx, d.StorageURL); err != nil {
		return fmt.Errorf("delete stored document: %w", err)
	}
	if err := s.repo.Delete(ctx, d.UserID, d.ID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
