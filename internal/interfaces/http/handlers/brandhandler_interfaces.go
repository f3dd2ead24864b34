package handlers

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	"github.com/brandvault/brandvault/internal/application/brand/usecases"
	"github.com/brandvault/brandvault/internal/shared/authorization"
)

type getOwnBrandUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.BrandViewResponse, error)
}

type updateOwnBrandUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, cmd usecases.UpdateOwnBrandCommand) (*dto.BrandViewResponse, error)
}

type getBrandDetailUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, brandID string) (*dto.BrandDetailResponse, error)
}

type searchBrandsUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, query string) (*dto.BrandListResponse, error)
}

type browseBrandsUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.BrandListResponse, error)
}

type quickCreateBrandUseCase interface {
	Execute(ctx context.Context, cmd usecases.QuickCreateBrandCommand) (*dto.QuickCreateBrandResponse, error)
}
