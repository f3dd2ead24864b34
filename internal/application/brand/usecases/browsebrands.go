package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type BrowseBrandsUseCase struct {
	brands   brand.Repository
	resolver *Resolver
	renderer dto.AboutRenderer
	logger   logger.Interface
}

func NewBrowseBrandsUseCase(
	brands brand.Repository,
	resolver *Resolver,
	renderer dto.AboutRenderer,
	logger logger.Interface,
) *BrowseBrandsUseCase {
	return &BrowseBrandsUseCase{
		brands:   brands,
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute lists the newest brands. p may be nil for anonymous visitors, who
// only ever see limited views.
func (uc *BrowseBrandsUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.BrandListResponse, error) {
	viewer := ""
	if p != nil {
		viewer = p.CompanyID
	}

	brands, err := uc.brands.ListRecent(ctx, browseLimit)
	if err != nil {
		uc.logger.Errorw("failed to list brands", "error", err)
		return nil, errors.WrapDependency(err)
	}

	views, err := uc.resolver.ResolveMany(ctx, viewer, brands)
	if err != nil {
		return nil, err
	}
	return toBrandList(brands, views, uc.renderer)
}
