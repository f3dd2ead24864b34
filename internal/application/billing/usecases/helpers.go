package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func loadCompany(ctx context.Context, companies company.Repository, companyID string, log logger.Interface) (*company.Company, error) {
	c, err := companies.GetByID(ctx, companyID)
	if err != nil {
		log.Errorw("failed to load company", "company_id", companyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if c == nil {
		return nil, errors.NewNotFoundError("Company not found")
	}
	return c, nil
}

func requireCustomer(c *company.Company) error {
	if !c.HasBillingCustomer() {
		return errors.NewValidationError("No billing customer on file for this company")
	}
	return nil
}
