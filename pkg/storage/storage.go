// Package storage keeps uploaded document and image bytes in any backend
// viant/afs understands (file://, mem://, s3://, gs://). Object URLs returned by
// Put are stored in metadata rows and passed back verbatim to Get and Delete.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// ErrObjectNotFound is returned when a stored object no longer exists.
var ErrObjectNotFound = errors.New("stored object not found")

// Store is a file store rooted at a base URL.
type Store struct {
	fs      afs.Service
	baseURL string
}

// New returns a Store rooted at baseURL, creating the root when missing.
func New(ctx context.Context, baseURL string) (*Store, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("storage: base URL cannot be empty")
	}
	fs := afs.New()
	baseURL = url.Normalize(baseURL, file.Scheme)

	exists, err := fs.Exists(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: check %s: %w", baseURL, err)
	}
	if !exists {
		if err := fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("storage: create %s: %w", baseURL, err)
		}
	}
	return &Store{fs: fs, baseURL: baseURL}, nil
}

// BaseURL returns the normalized root URL.
func (s *Store) BaseURL() string {
	return s.baseURL
}

// Put writes r under key (a slash separated relative path) and returns the object URL.
func (s *Store) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	objectURL := url.Join(s.baseURL, strings.TrimLeft(key, "/"))
	if err := s.fs.Upload(ctx, objectURL, file.DefaultFileOsMode, r); err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", key, err)
	}
	return objectURL, nil
}

// Get reads the object at objectURL.
func (s *Store) Get(ctx context.Context, objectURL string) ([]byte, error) {
	if err := s.owns(objectURL); err != nil {
		return nil, err
	}
	exists, err := s.fs.Exists(ctx, objectURL)
	if err != nil {
		return nil, fmt.Errorf("storage: check %s: %w", objectURL, err)
	}
	if !exists {
		return nil, ErrObjectNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, objectURL)
	if err != nil {
		return nil, fmt.Errorf("storage: download %s: %w", objectURL, err)
	}
	return data, nil
}

// Delete removes the object at objectURL. Deleting a missing object is not an error.
func (s *Store) Delete(ctx context.Context, objectURL string) error {
	if err := s.owns(objectURL); err != nil {
		return err
	}
	exists, err := s.fs.Exists(ctx, objectURL)
	if err != nil {
		return fmt.Errorf("storage: check %s: %w", objectURL, err)
	}
	if !exists {
		return nil
	}
	if err := s.fs.Delete(ctx, objectURL); err != nil {
		return fmt.Errorf("storage: delete %s: %w", objectURL, err)
	}
	return nil
}

// Ping reports whether the store root is reachable. Used by the health check.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.fs.Exists(ctx, s.baseURL); err != nil {
		return fmt.Errorf("storage: ping: %w", err)
	}
	return nil
}

// owns rejects URLs outside the store root.
func (s *Store) owns(objectURL string) error {
	if !strings.HasPrefix(objectURL, strings.TrimRight(s.baseURL, "/")+"/") {
		return fmt.Errorf("storage: %s is outside %s", objectURL, s.baseURL)
	}
	return nil
}
