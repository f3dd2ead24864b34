package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/shared/db"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type QuickCreateBrandCommand struct {
	BrandName   string
	CompanyName string
	About       string
	Website     string
	ContactInfo string
}

// QuickCreateBrandUseCase registers an UNPAID company and its brand without
// creating any user.
type QuickCreateBrandUseCase struct {
	companies company.Repository
	brands    brand.Repository
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewQuickCreateBrandUseCase(
	companies company.Repository,
	brands brand.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *QuickCreateBrandUseCase {
	return &QuickCreateBrandUseCase{
		companies: companies,
		brands:    brands,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *QuickCreateBrandUseCase) Execute(ctx context.Context, cmd QuickCreateBrandCommand) (*dto.QuickCreateBrandResponse, error) {
	c, err := company.NewCompany(cmd.CompanyName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	b, err := brand.NewBrand(c.ID(), cmd.BrandName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := b.UpdateProfile(brand.Profile{
		Name:        cmd.BrandName,
		About:       cmd.About,
		Website:     cmd.Website,
		ContactInfo: cmd.ContactInfo,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.companies.Create(txCtx, c); err != nil {
			return err
		}
		return uc.brands.Create(txCtx, b)
	})
	if err != nil {
		uc.logger.Errorw("failed to quick-create brand", "company_name", cmd.CompanyName, "error", err)
		return nil, errors.WrapDependency(err)
	}

	uc.logger.Infow("brand quick-created", "company_id", c.ID(), "brand_id", b.ID())
	return dto.ToQuickCreateBrandResponse(c, b), nil
}
