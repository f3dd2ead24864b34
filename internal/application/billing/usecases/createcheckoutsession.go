package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/billing/dto"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/infrastructure/billing"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type CreateCheckoutSessionUseCase struct {
	companies company.Repository
	gateway   Gateway
	logger    logger.Interface
}

func NewCreateCheckoutSessionUseCase(companies company.Repository, gateway Gateway, logger logger.Interface) *CreateCheckoutSessionUseCase {
	return &CreateCheckoutSessionUseCase{
		companies: companies,
		gateway:   gateway,
		logger:    logger,
	}
}

func (uc *CreateCheckoutSessionUseCase) Execute(ctx context.Context, p *authorization.Principal, additionalUsers int64) (*dto.SessionURLResponse, error) {
	if additionalUsers < 0 {
		return nil, errors.NewValidationError("additionalUsers cannot be negative")
	}

	c, err := loadCompany(ctx, uc.companies, p.CompanyID, uc.logger)
	if err != nil {
		return nil, err
	}
	if err := requireCustomer(c); err != nil {
		return nil, err
	}

	url, err := uc.gateway.CreateCheckoutSession(ctx, billing.CheckoutRequest{
		CustomerID:      c.BillingCustomerID(),
		CompanyID:       c.ID(),
		AdditionalUsers: additionalUsers,
	})
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "company_id", c.ID(), "error", err)
		return nil, errors.NewDependencyError(err)
	}

	uc.logger.Infow("checkout session created", "company_id", c.ID(), "additional_users", additionalUsers)
	return &dto.SessionURLResponse{URL: url}, nil
}
