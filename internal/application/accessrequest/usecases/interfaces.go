package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/notification"
)

// IntentDispatcher delivers notification intents after a use case commits.
type IntentDispatcher interface {
	Dispatch(ctx context.Context, intents ...notification.Intent) int
}

// MetricsRecorder counts access-request state changes.
type MetricsRecorder interface {
	AccessRequestTransition(status string)
}
