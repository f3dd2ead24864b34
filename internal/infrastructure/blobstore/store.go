// Package blobstore keeps uploaded asset bytes outside the database.
package blobstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brandvault/brandvault/internal/shared/config"
)

const (
	DriverS3    = "s3"
	DriverLocal = "local"
)

// Store is the blob collaborator used by the asset use cases.
type Store interface {
	// Put stores body under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
	// Presign returns a time-limited download URL for key.
	Presign(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverS3:
		return NewS3Store(ctx, cfg)
	case DriverLocal, "":
		return NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL, cfg.SigningKey)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return fmt.Errorf("invalid blob key %q", key)
	}
	return nil
}
