package usecases

import (
	"context"
	stderrors "errors"

	"github.com/brandvault/brandvault/internal/application/billing/dto"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/infrastructure/billing"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// HandleWebhookUseCase applies provider subscription state to companies.
type HandleWebhookUseCase struct {
	companies company.Repository
	gateway   Gateway
	logger    logger.Interface
}

func NewHandleWebhookUseCase(companies company.Repository, gateway Gateway, logger logger.Interface) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		companies: companies,
		gateway:   gateway,
		logger:    logger,
	}
}

// Execute verifies the delivery first. Unknown event types, and events for
// companies that cannot be found, are acknowledged without changes.
func (uc *HandleWebhookUseCase) Execute(ctx context.Context, payload []byte, signature string) (*dto.WebhookResponse, error) {
	event, err := uc.gateway.ParseEvent(payload, signature)
	if err != nil {
		if stderrors.Is(err, billing.ErrDisabled) {
			return nil, errors.NewDependencyError(err)
		}
		uc.logger.Warnw("rejected webhook delivery", "error", err)
		return nil, errors.NewValidationError("Invalid webhook signature")
	}

	var sub *billing.Subscription
	switch event.Type {
	case billing.EventSubscriptionCreated, billing.EventSubscriptionUpdated, billing.EventSubscriptionDeleted:
		sub = event.Subscription
	case billing.EventInvoicePaid, billing.EventInvoiceFailed:
		if event.InvoiceSubscriptionID == "" {
			break
		}
		sub, err = uc.gateway.GetSubscription(ctx, event.InvoiceSubscriptionID)
		if err != nil {
			uc.logger.Errorw("failed to fetch invoice subscription",
				"event_id", event.ID,
				"subscription_id", event.InvoiceSubscriptionID,
				"error", err,
			)
			return nil, errors.NewDependencyError(err)
		}
	default:
		uc.logger.Debugw("ignoring webhook event", "event_id", event.ID, "type", event.Type)
	}

	if sub == nil {
		return &dto.WebhookResponse{Received: true}, nil
	}

	handled, err := uc.apply(ctx, event, sub)
	if err != nil {
		return nil, err
	}
	return &dto.WebhookResponse{Received: true, Handled: handled}, nil
}

func (uc *HandleWebhookUseCase) apply(ctx context.Context, event *billing.Event, sub *billing.Subscription) (bool, error) {
	c, err := uc.findCompany(ctx, sub)
	if err != nil {
		return false, err
	}
	if c == nil {
		uc.logger.Warnw("webhook subscription matches no company",
			"event_id", event.ID,
			"subscription_id", sub.ID,
			"customer_id", sub.CustomerID,
		)
		return false, nil
	}

	status := company.StatusFromProvider(sub.Status)
	if err := c.ApplySubscription(status, sub.ID, sub.CurrentPeriodEnd); err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	if err := uc.companies.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to store subscription state", "company_id", c.ID(), "error", err)
		return false, errors.WrapDependency(err)
	}

	uc.logger.Infow("subscription state applied",
		"event_id", event.ID,
		"type", event.Type,
		"company_id", c.ID(),
		"status", status,
	)
	return true, nil
}

// findCompany prefers the companyId metadata and falls back to the customer.
func (uc *HandleWebhookUseCase) findCompany(ctx context.Context, sub *billing.Subscription) (*company.Company, error) {
	if sub.CompanyID != "" {
		c, err := uc.companies.GetByID(ctx, sub.CompanyID)
		if err != nil {
			uc.logger.Errorw("failed to load company", "company_id", sub.CompanyID, "error", err)
			return nil, errors.WrapDependency(err)
		}
		if c != nil {
			return c, nil
		}
	}
	if sub.CustomerID == "" {
		return nil, nil
	}

	c, err := uc.companies.GetByBillingCustomerID(ctx, sub.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to load company by customer", "customer_id", sub.CustomerID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	return c, nil
}
