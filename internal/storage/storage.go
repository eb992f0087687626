package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where résumé files live.
type Storage interface {
	// Save stores a file at the given key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a file by key
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Exists checks whether a key is present
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for a key
	GetURL(key string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // local only
	BaseURL   string // public URL base
	Bucket    string // s3 only
	Region    string // s3 only
	AccessKey string // s3 only
	SecretKey string // s3 only
	Endpoint  string // custom s3 endpoint
}

// NewStorage builds a backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
