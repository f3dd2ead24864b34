package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type GetOwnBrandUseCase struct {
	brands   brand.Repository
	resolver *Resolver
	renderer dto.AboutRenderer
	logger   logger.Interface
}

func NewGetOwnBrandUseCase(
	brands brand.Repository,
	resolver *Resolver,
	renderer dto.AboutRenderer,
	logger logger.Interface,
) *GetOwnBrandUseCase {
	return &GetOwnBrandUseCase{
		brands:   brands,
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *GetOwnBrandUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.BrandViewResponse, error) {
	b, err := loadOwnBrand(ctx, uc.brands, p.CompanyID, uc.logger)
	if err != nil {
		return nil, err
	}

	view, err := uc.resolver.Resolve(ctx, p.CompanyID, b)
	if err != nil {
		return nil, err
	}
	return dto.ToBrandViewResponse(view, uc.renderer)
}

func loadOwnBrand(ctx context.Context, brands brand.Repository, companyID string, log logger.Interface) (*brand.Brand, error) {
	b, err := brands.GetByCompanyID(ctx, companyID)
	if err != nil {
		log.Errorw("failed to load own brand", "company_id", companyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError("Brand not found")
	}
	return b, nil
}
