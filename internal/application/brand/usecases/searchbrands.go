package usecases

import (
	"context"
	"strings"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/visibility"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

const (
	searchLimit = 50
	browseLimit = 50
)

type SearchBrandsUseCase struct {
	brands   brand.Repository
	resolver *Resolver
	renderer dto.AboutRenderer
	logger   logger.Interface
}

func NewSearchBrandsUseCase(
	brands brand.Repository,
	resolver *Resolver,
	renderer dto.AboutRenderer,
	logger logger.Interface,
) *SearchBrandsUseCase {
	return &SearchBrandsUseCase{
		brands:   brands,
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute lists other companies' brands whose name contains query, case
// insensitively. An empty query matches every brand.
func (uc *SearchBrandsUseCase) Execute(ctx context.Context, p *authorization.Principal, query string) (*dto.BrandListResponse, error) {
	query = strings.TrimSpace(query)

	brands, err := uc.brands.SearchByName(ctx, query, p.CompanyID, searchLimit)
	if err != nil {
		uc.logger.Errorw("failed to search brands", "query", query, "error", err)
		return nil, errors.WrapDependency(err)
	}

	views, err := uc.resolver.ResolveMany(ctx, p.CompanyID, brands)
	if err != nil {
		return nil, err
	}
	return toBrandList(brands, views, uc.renderer)
}

func toBrandList(brands []*brand.Brand, views []visibility.View, renderer dto.AboutRenderer) (*dto.BrandListResponse, error) {
	out := make([]*dto.BrandViewResponse, 0, len(views))
	for i, v := range views {
		resp, err := dto.ToBrandViewResponse(v, renderer)
		if err != nil {
			return nil, err
		}
		updated := dto.LastUpdated(v, brands[i])
		resp.LastUpdated = &updated
		out = append(out, resp)
	}
	return &dto.BrandListResponse{Brands: out}, nil
}
