package storage

import (
	"context"
	"io"
)

// Storage is the file-storage port used for vendor work samples.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// GetURL returns the public URL for the file.
	GetURL(path string) string
}

// Config holds storage configuration.
type Config struct {
	BasePath string
	BaseURL  string
}

// NewStorage creates the storage backend. Only local disk is supported.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
