package mappers

import (
	"fmt"

	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type AssetMapper interface {
	ToEntity(model *models.AssetModel) (*asset.Asset, error)
	ToModel(entity *asset.Asset) (*models.AssetModel, error)
	ToEntities(models []*models.AssetModel) ([]*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToEntity(model *models.AssetModel) (*asset.Asset, error) {
	if model == nil {
		return nil, nil
	}

	category, err := asset.ParseCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", model.ID, err)
	}
	tags := []string{}
	if err := fromJSON(model.Tags, &tags); err != nil {
		return nil, fmt.Errorf("asset %s tags: %w", model.ID, err)
	}

	return asset.ReconstructAsset(
		model.ID,
		model.BrandID,
		model.Filename,
		asset.Metadata{
			OriginalName: model.OriginalName,
			FileType:     model.FileType,
			Size:         model.Size,
			Category:     category,
			ProductName:  model.ProductName,
			Description:  model.Description,
			Tags:         tags,
		},
		model.CreatedAt,
	)
}

func (m *AssetMapperImpl) ToModel(entity *asset.Asset) (*models.AssetModel, error) {
	if entity == nil {
		return nil, nil
	}

	tags, err := toJSON(entity.Tags())
	if err != nil {
		return nil, err
	}

	return &models.AssetModel{
		ID:           entity.ID(),
		BrandID:      entity.BrandID(),
		Filename:     entity.StorageKey(),
		OriginalName: entity.OriginalName(),
		FileType:     entity.FileType(),
		Size:         entity.Size(),
		Category:     entity.Category().String(),
		ProductName:  entity.ProductName(),
		Description:  entity.Description(),
		Tags:         tags,
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

func (m *AssetMapperImpl) ToEntities(list []*models.AssetModel) ([]*asset.Asset, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}
