package mappers

import (
	"fmt"

	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type BrandMapper interface {
	ToEntity(model *models.BrandModel) (*brand.Brand, error)
	ToModel(entity *brand.Brand) (*models.BrandModel, error)
	ToEntities(models []*models.BrandModel) ([]*brand.Brand, error)
}

type BrandMapperImpl struct{}

func NewBrandMapper() BrandMapper {
	return &BrandMapperImpl{}
}

func (m *BrandMapperImpl) ToEntity(model *models.BrandModel) (*brand.Brand, error) {
	if model == nil {
		return nil, nil
	}

	links := brand.SocialLinks{}
	if err := fromJSON(model.SocialLinks, &links); err != nil {
		return nil, fmt.Errorf("brand %s social links: %w", model.ID, err)
	}

	return brand.ReconstructBrand(
		model.ID,
		model.CompanyID,
		model.Name,
		model.About,
		model.Website,
		model.ContactInfo,
		links,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *BrandMapperImpl) ToModel(entity *brand.Brand) (*models.BrandModel, error) {
	if entity == nil {
		return nil, nil
	}

	links, err := toJSON(entity.SocialLinks())
	if err != nil {
		return nil, err
	}

	return &models.BrandModel{
		ID:          entity.ID(),
		CompanyID:   entity.CompanyID(),
		Name:        entity.Name(),
		About:       entity.About(),
		Website:     entity.Website(),
		ContactInfo: entity.ContactInfo(),
		SocialLinks: links,
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *BrandMapperImpl) ToEntities(list []*models.BrandModel) ([]*brand.Brand, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}
