package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/services/assistant/domain/models"
	documentsvcs "github.com/ghuser/bizzy/services/document/application/services"
	documentmodels "github.com/ghuser/bizzy/services/document/domain/models"
)

// documentAdapter keeps chat attachments in the document store.
type documentAdapter struct {
	svc *documentsvcs.DocumentService
}

// DocumentAttachments stores chat attachments as documents of the user, so
// they are also listed and downloaded through the document endpoints.
func DocumentAttachments(svc *documentsvcs.DocumentService) Attachments {
	return documentAdapter{svc: svc}
}

func (a documentAdapter) Store(ctx context.Context, userID uuid.UUID, typ models.Type, f File) (uuid.UUID, string, error) {
	kind := documentmodels.KindDocument
	if typ == models.TypeImage {
		kind = documentmodels.KindImage
	}
	docs, err := a.svc.Upload(ctx, userID, []documentsvcs.Upload{{
		Kind:        kind,
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		Body:        f.Body,
	}})
	if err != nil {
		return uuid.Nil, "", err
	}
	return docs[0].ID, docs[0].Name, nil
}

func (a documentAdapter) Remove(ctx context.Context, userID, documentID uuid.UUID) error {
	return a.svc.Delete(ctx, userID, documentID)
}
