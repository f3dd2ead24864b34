package usecases

import (
	"context"
	"time"

	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/domain/visibility"
)

// BlobStore keeps asset bytes.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
	Presign(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// AccessResolver decides a viewer's access to a brand.
type AccessResolver interface {
	Access(ctx context.Context, viewerCompanyID string, b *brand.Brand) (visibility.Access, error)
}

type IntentDispatcher interface {
	Dispatch(ctx context.Context, intents ...notification.Intent) int
}

type MetricsRecorder interface {
	AssetUploaded(category string)
}
