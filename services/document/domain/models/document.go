package models

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFilesPerKind bounds the documents and the images of one upload.
const MaxFilesPerKind = 3

// Kind separates documents from images.
type Kind string

const (
	KindDocument Kind = "document"
	KindImage    Kind = "image"
)

// ParseKind validates s.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDocument, KindImage:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("kind must be document or image, got %q", s)
	}
}

// Document is the metadata of one stored file.
type Document struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        Kind
	Name        string
	StorageURL  string
	Size        int64
	ContentType string
	UploadedAt  time.Time
}

// NewDocument validates an incoming file. StorageURL is set once the bytes are stored.
func NewDocument(userID uuid.UUID, kind Kind, name, contentType string, size int64) (*Document, error) {
	name = cleanName(name)
	if name == "" {
		return nil, errors.New("file name is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("%s is empty", name)
	}
	if kind == KindImage && !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%s is not an image (%s)", name, contentType)
	}
	return &Document{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Name:        name,
		Size:        size,
		ContentType: contentType,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

// Key is the object key relative to the store root: <kind>s/<userID>/<id>-<name>.
func (d *Document) Key() string {
	return fmt.Sprintf("%ss/%s/%s-%s", d.Kind, d.UserID, d.ID, d.Name)
}

// cleanName keeps the base name and drops characters that would split the key.
func cleanName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
}
