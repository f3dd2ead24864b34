package usecases

import (
	"context"
	"time"

	"github.com/brandvault/brandvault/internal/application/asset/dto"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/biztime"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// DownloadAssetUseCase hands out a presigned URL to viewers with full access
// to the owning brand.
type DownloadAssetUseCase struct {
	brands   brand.Repository
	assets   asset.Repository
	resolver AccessResolver
	blobs    BlobStore
	ttl      time.Duration
	clock    biztime.Clock
	logger   logger.Interface
}

func NewDownloadAssetUseCase(
	brands brand.Repository,
	assets asset.Repository,
	resolver AccessResolver,
	blobs BlobStore,
	ttl time.Duration,
	clock biztime.Clock,
	logger logger.Interface,
) *DownloadAssetUseCase {
	return &DownloadAssetUseCase{
		brands:   brands,
		assets:   assets,
		resolver: resolver,
		blobs:    blobs,
		ttl:      ttl,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *DownloadAssetUseCase) Execute(ctx context.Context, p *authorization.Principal, assetID string) (*dto.DownloadResponse, error) {
	a, err := uc.assets.GetByID(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to load asset", "asset_id", assetID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Asset not found")
	}

	b, err := uc.brands.GetByID(ctx, a.BrandID())
	if err != nil {
		uc.logger.Errorw("failed to load asset brand", "brand_id", a.BrandID(), "error", err)
		return nil, errors.WrapDependency(err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError("Asset not found")
	}

	access, err := uc.resolver.Access(ctx, p.CompanyID, b)
	if err != nil {
		return nil, err
	}
	if !access.IsFull() {
		return nil, errors.NewForbiddenError("Access to this brand's assets has not been granted")
	}

	now := uc.clock.Now()
	url, err := uc.blobs.Presign(ctx, a.StorageKey(), uc.ttl)
	if err != nil {
		uc.logger.Errorw("failed to presign asset", "asset_id", a.ID(), "error", err)
		return nil, errors.NewDependencyError(err)
	}

	return &dto.DownloadResponse{
		URL:       url,
		ExpiresAt: now.Add(uc.ttl),
	}, nil
}
