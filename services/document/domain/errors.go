package domain

import "errors"

// Sentinel errors for the document domain. Use errors.Is() to check these.
var (
	// ErrDocumentNotFound indicates the document or its stored bytes do not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocument indicates a rejected upload (empty, unnamed or wrong content type).
	ErrInvalidDocument = errors.New("invalid document")

	// ErrTooManyFiles indicates more than MaxFilesPerKind files of one kind in a single upload.
	ErrTooManyFiles = errors.New("too many files in one upload")
)
