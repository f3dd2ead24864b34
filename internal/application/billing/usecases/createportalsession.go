package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/billing/dto"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type CreatePortalSessionUseCase struct {
	companies company.Repository
	gateway   Gateway
	logger    logger.Interface
}

func NewCreatePortalSessionUseCase(companies company.Repository, gateway Gateway, logger logger.Interface) *CreatePortalSessionUseCase {
	return &CreatePortalSessionUseCase{
		companies: companies,
		gateway:   gateway,
		logger:    logger,
	}
}

func (uc *CreatePortalSessionUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.SessionURLResponse, error) {
	c, err := loadCompany(ctx, uc.companies, p.CompanyID, uc.logger)
	if err != nil {
		return nil, err
	}
	if err := requireCustomer(c); err != nil {
		return nil, err
	}

	url, err := uc.gateway.CreatePortalSession(ctx, c.BillingCustomerID())
	if err != nil {
		uc.logger.Errorw("failed to create portal session", "company_id", c.ID(), "error", err)
		return nil, errors.NewDependencyError(err)
	}
	return &dto.SessionURLResponse{URL: url}, nil
}
