package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/infrastructure/billing"
)

// Gateway is the billing provider as seen by the billing use cases.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req billing.CheckoutRequest) (string, error)
	CreatePortalSession(ctx context.Context, customerID string) (string, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*billing.Subscription, error)
	ParseEvent(payload []byte, signature string) (*billing.Event, error)
}
