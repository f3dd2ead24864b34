package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

var _ IntentDispatcher = (*Dispatcher)(nil)

// Dispatcher fans intents out to one notification per recipient. Delivery is
// best-effort: failures are logged and never reach the caller.
type Dispatcher struct {
	audience AudienceResolver
	repo     notification.Repository
	metrics  MetricsRecorder
	logger   logger.Interface
}

func NewDispatcher(
	audience AudienceResolver,
	repo notification.Repository,
	metrics MetricsRecorder,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		audience: audience,
		repo:     repo,
		metrics:  metrics,
		logger:   logger,
	}
}

// Dispatch returns how many notifications were stored. It ignores
// cancellation of ctx so a client disconnect does not drop the fan-out.
func (d *Dispatcher) Dispatch(ctx context.Context, intents ...notification.Intent) int {
	ctx = context.WithoutCancel(ctx)

	total := 0
	for _, intent := range intents {
		if intent.IsEmpty() {
			continue
		}
		total += d.dispatchOne(ctx, intent)
	}
	return total
}

func (d *Dispatcher) dispatchOne(ctx context.Context, intent notification.Intent) int {
	recipients, err := d.audience.ListIDsByCompanyIDs(ctx, intent.CompanyIDs)
	if err != nil {
		d.logger.Errorw("failed to resolve notification audience",
			"type", intent.Type,
			"company_ids", intent.CompanyIDs,
			"error", err,
		)
		return 0
	}
	if len(recipients) == 0 {
		return 0
	}

	batch := make([]*notification.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		n, err := notification.NewNotification(recipientID, intent.Type, intent.Title, intent.Content)
		if err != nil {
			d.logger.Warnw("skipping invalid notification", "recipient_id", recipientID, "type", intent.Type, "error", err)
			continue
		}
		batch = append(batch, n)
	}

	if err := d.repo.BulkCreate(ctx, batch); err != nil {
		d.logger.Errorw("failed to persist notifications",
			"type", intent.Type,
			"recipients", len(batch),
			"error", err,
		)
		return 0
	}

	if d.metrics != nil {
		d.metrics.NotificationsPersisted(intent.Type.String(), len(batch))
	}
	d.logger.Debugw("notifications dispatched", "type", intent.Type, "recipients", len(batch))
	return len(batch)
}
