// Package billing adapts Stripe to the subscription lifecycle of a company.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/brandvault/brandvault/internal/shared/biztime"
	"github.com/brandvault/brandvault/internal/shared/config"
)

// ErrDisabled is returned by every provider call when no secret key is configured.
var ErrDisabled = errors.New("billing provider is not configured")

const metadataCompanyID = "companyId"

// Provider event types the webhook reacts to.
const (
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
	EventInvoicePaid         = "invoice.payment_succeeded"
	EventInvoiceFailed       = "invoice.payment_failed"
)

// Subscription is the provider-neutral slice of a Stripe subscription.
type Subscription struct {
	ID               string
	CustomerID       string
	CompanyID        string
	Status           string
	CurrentPeriodEnd *time.Time
}

// Event is a verified webhook delivery. Exactly one of Subscription or
// InvoiceSubscriptionID is set for handled types; both are empty otherwise.
type Event struct {
	ID                    string
	Type                  string
	Subscription          *Subscription
	InvoiceSubscriptionID string
}

type CheckoutRequest struct {
	CustomerID      string
	CompanyID       string
	AdditionalUsers int64
}

type StripeGateway struct {
	api *client.API
	cfg config.BillingConfig
}

func NewStripeGateway(cfg config.BillingConfig) *StripeGateway {
	g := &StripeGateway{cfg: cfg}
	if cfg.Enabled() {
		g.api = &client.API{}
		g.api.Init(cfg.SecretKey, nil)
	}
	return g
}

func (g *StripeGateway) Enabled() bool {
	return g.api != nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name, companyID string) (string, error) {
	if !g.Enabled() {
		return "", ErrDisabled
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	params.AddMetadata(metadataCompanyID, companyID)

	customer, err := g.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}
	return customer.ID, nil
}

// CreateCheckoutSession returns the hosted checkout URL for the monthly plan
// plus AdditionalUsers seats.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error) {
	if !g.Enabled() {
		return "", ErrDisabled
	}

	items := []*stripe.CheckoutSessionLineItemParams{
		{Price: stripe.String(g.cfg.MonthlyPriceID), Quantity: stripe.Int64(1)},
	}
	if req.AdditionalUsers > 0 {
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(g.cfg.AdditionalUserPriceID),
			Quantity: stripe.Int64(req.AdditionalUsers),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(req.CustomerID),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          items,
		SuccessURL:         stripe.String(g.cfg.AppURL + "/dashboard?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(g.cfg.AppURL + "/billing"),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{metadataCompanyID: req.CompanyID},
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataCompanyID, req.CompanyID)

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

func (g *StripeGateway) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	if !g.Enabled() {
		return "", ErrDisabled
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(g.cfg.AppURL + "/billing"),
	}
	params.Context = ctx

	session, err := g.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create portal session: %w", err)
	}
	return session.URL, nil
}

func (g *StripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	if !g.Enabled() {
		return nil, ErrDisabled
	}

	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := g.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscription %s: %w", subscriptionID, err)
	}
	return toSubscription(sub), nil
}

// ParseEvent verifies the Stripe-Signature header and decodes the payload.
func (g *StripeGateway) ParseEvent(payload []byte, signature string) (*Event, error) {
	if g.cfg.WebhookSecret == "" {
		return nil, ErrDisabled
	}

	raw, err := webhook.ConstructEventWithOptions(payload, signature, g.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("failed to verify webhook: %w", err)
	}
	return decodeEvent(raw)
}

func decodeEvent(raw stripe.Event) (*Event, error) {
	event := &Event{ID: raw.ID, Type: string(raw.Type)}
	if raw.Data == nil {
		return event, nil
	}

	switch event.Type {
	case EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(raw.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		event.Subscription = toSubscription(&sub)
	case EventInvoicePaid, EventInvoiceFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(raw.Data.Raw, &invoice); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		if invoice.Subscription != nil {
			event.InvoiceSubscriptionID = invoice.Subscription.ID
		}
	}
	return event, nil
}

func toSubscription(sub *stripe.Subscription) *Subscription {
	out := &Subscription{
		ID:               sub.ID,
		Status:           string(sub.Status),
		CurrentPeriodEnd: biztime.FromUnix(sub.CurrentPeriodEnd),
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.Metadata != nil {
		out.CompanyID = sub.Metadata[metadataCompanyID]
	}
	return out
}
