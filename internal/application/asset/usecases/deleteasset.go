package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type DeleteAssetUseCase struct {
	brands brand.Repository
	assets asset.Repository
	blobs  BlobStore
	logger logger.Interface
}

func NewDeleteAssetUseCase(
	brands brand.Repository,
	assets asset.Repository,
	blobs BlobStore,
	logger logger.Interface,
) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		brands: brands,
		assets: assets,
		blobs:  blobs,
		logger: logger,
	}
}

// Execute lets any member of the owning company delete an asset. The blob is
// removed after the row; a blob failure is only logged.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, p *authorization.Principal, assetID string) error {
	a, err := uc.assets.GetByID(ctx, assetID)
	if err != nil {
		uc.logger.Errorw("failed to load asset", "asset_id", assetID, "error", err)
		return errors.WrapDependency(err)
	}
	if a == nil {
		return errors.NewNotFoundError("Asset not found")
	}

	b, err := uc.brands.GetByID(ctx, a.BrandID())
	if err != nil {
		uc.logger.Errorw("failed to load asset brand", "brand_id", a.BrandID(), "error", err)
		return errors.WrapDependency(err)
	}
	if b == nil || !b.IsOwnedBy(p.CompanyID) {
		return errors.NewForbiddenError("Not authorized to delete this asset")
	}

	if err := uc.assets.Delete(ctx, a.ID()); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete asset", "asset_id", a.ID(), "error", err)
		}
		return errors.WrapDependency(err)
	}

	if err := uc.blobs.Delete(context.WithoutCancel(ctx), a.StorageKey()); err != nil {
		uc.logger.Warnw("failed to delete asset blob", "asset_id", a.ID(), "key", a.StorageKey(), "error", err)
	}

	uc.logger.Infow("asset deleted", "asset_id", a.ID(), "user_id", p.UserID)
	return nil
}
