package mappers

import (
	"fmt"

	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type AccessRequestMapper interface {
	ToEntity(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error)
	ToModel(entity *accessrequest.AccessRequest) *models.AccessRequestModel
	ToEntities(models []*models.AccessRequestModel) ([]*accessrequest.AccessRequest, error)
}

type AccessRequestMapperImpl struct{}

func NewAccessRequestMapper() AccessRequestMapper {
	return &AccessRequestMapperImpl{}
}

func (m *AccessRequestMapperImpl) ToEntity(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error) {
	if model == nil {
		return nil, nil
	}

	status, err := accessrequest.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("access request %s: %w", model.ID, err)
	}
	accessType, err := accessrequest.ParseAccessType(model.AccessType)
	if err != nil {
		return nil, fmt.Errorf("access request %s: %w", model.ID, err)
	}

	return accessrequest.ReconstructAccessRequest(
		model.ID,
		model.RequesterCompanyID,
		model.TargetBrandID,
		status,
		accessType,
		model.Message,
		model.CreatedAt,
		model.UpdatedAt,
		model.ApprovedAt,
	)
}

func (m *AccessRequestMapperImpl) ToModel(entity *accessrequest.AccessRequest) *models.AccessRequestModel {
	if entity == nil {
		return nil
	}

	return &models.AccessRequestModel{
		ID:                 entity.ID(),
		RequesterCompanyID: entity.RequesterCompanyID(),
		TargetBrandID:      entity.TargetBrandID(),
		Status:             entity.Status().String(),
		AccessType:         entity.AccessType().String(),
		Message:            entity.Message(),
		ApprovedAt:         entity.ApprovedAt(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *AccessRequestMapperImpl) ToEntities(list []*models.AccessRequestModel) ([]*accessrequest.AccessRequest, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}
