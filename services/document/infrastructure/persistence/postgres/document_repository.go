package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/database"
	documentdomain "github.com/ghuser/bizzy/services/document/domain"
	"github.com/ghuser/bizzy/services/document/domain/models"
	"github.com/ghuser/bizzy/services/document/infrastructure/persistence/postgres/db"
)

// DocumentRepository implements repositories.DocumentRepository against PostgreSQL.
type DocumentRepository struct {
	db *database.Database
}

// NewDocumentRepository returns a DocumentRepository backed by the given pool.
func NewDocumentRepository(database *database.Database) *DocumentRepository {
	return &DocumentRepository{db: database}
}

func (r *DocumentRepository) Save(ctx context.Context, d *models.Document) error {
	err := db.New(r.db.DB()).InsertDocument(ctx, db.InsertDocumentParams{
		ID:          d.ID,
		UserID:      d.UserID,
		Kind:        string(d.Kind),
		Name:        d.Name,
		StorageUrl:  d.StorageURL,
		Size:        d.Size,
		ContentType: d.ContentType,
		UploadedAt:  d.UploadedAt,
	})
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Document, error) {
	row, err := db.New(r.db.DB()).GetDocument(ctx, db.GetDocumentParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, documentdomain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query document: %w", err)
	}
	return rowToDocument(row), nil
}

func (r *DocumentRepository) FindByUserID(ctx context.Context, userID uuid.UUID, kind *models.Kind) ([]*models.Document, error) {
	arg := db.ListDocumentsParams{UserID: userID}
	if kind != nil {
		arg.Kind = sql.NullString{String: string(*kind), Valid: true}
	}
	rows, err := db.New(r.db.DB()).ListDocuments(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	docs := make([]*models.Document, len(rows))
	for i, row := range rows {
		docs[i] = rowToDocument(row)
	}
	return docs, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteDocument(ctx, db.DeleteDocumentParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n == 0 {
		return documentdomain.ErrDocumentNotFound
	}
	return nil
}

func rowToDocument(row db.Document) *models.Document {
	return &models.Document{
		ID:          row.ID,
		UserID:      row.UserID,
		Kind:        models.Kind(row.Kind),
		Name:        row.Name,
		StorageURL:  row.StorageUrl,
		Size:        row.Size,
		ContentType: row.ContentType,
		UploadedAt:  row.UploadedAt,
	}
}
