package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/mappers"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/db"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
	logger logger.Interface
}

func NewAssetRepository(db *gorm.DB, logger logger.Interface) asset.Repository {
	return &AssetRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
		logger: logger,
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map asset entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create asset", "brand_id", model.BrandID, "error", err)
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id string) (*asset.Asset, error) {
	var model models.AssetModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get asset", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map asset model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map asset: %w", err)
	}
	return entity, nil
}

func (r *AssetRepository) ListByBrandID(ctx context.Context, brandID string) ([]*asset.Asset, error) {
	var list []*models.AssetModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list assets", "brand_id", brandID, "error", err)
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *AssetRepository) ListByBrandIDs(ctx context.Context, brandIDs []string) (map[string][]*asset.Asset, error) {
	grouped := make(map[string][]*asset.Asset, len(brandIDs))
	if len(brandIDs) == 0 {
		return grouped, nil
	}

	var list []*models.AssetModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("brand_id IN ?", brandIDs).
		Order("created_at DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list assets by brands", "count", len(brandIDs), "error", err)
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, fmt.Errorf("failed to map assets: %w", err)
	}
	for _, a := range entities {
		grouped[a.BrandID()] = append(grouped[a.BrandID()], a)
	}
	return grouped, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.AssetModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete asset", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Asset not found")
	}
	return nil
}
