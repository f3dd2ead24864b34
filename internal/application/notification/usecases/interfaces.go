package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/notification"
)

// AudienceResolver expands companies into their member user ids.
type AudienceResolver interface {
	ListIDsByCompanyIDs(ctx context.Context, companyIDs []string) ([]string, error)
}

// IntentDispatcher persists notification intents once the originating work has committed.
type IntentDispatcher interface {
	Dispatch(ctx context.Context, intents ...notification.Intent) int
}

// MetricsRecorder counts persisted notifications.
type MetricsRecorder interface {
	NotificationsPersisted(ntype string, n int)
}
