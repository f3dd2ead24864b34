package mappers

import (
	"fmt"

	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type CompanyMapper interface {
	ToEntity(model *models.CompanyModel) (*company.Company, error)
	ToModel(entity *company.Company) *models.CompanyModel
	ToEntities(models []*models.CompanyModel) ([]*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToEntity(model *models.CompanyModel) (*company.Company, error) {
	if model == nil {
		return nil, nil
	}

	status, err := company.ParseSubscriptionStatus(model.SubscriptionStatus)
	if err != nil {
		return nil, fmt.Errorf("company %s: %w", model.ID, err)
	}

	return company.ReconstructCompany(
		model.ID,
		model.Name,
		status,
		strVal(model.BillingCustomerID),
		strVal(model.SubscriptionID),
		model.SubscriptionEndsAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CompanyMapperImpl) ToModel(entity *company.Company) *models.CompanyModel {
	if entity == nil {
		return nil
	}

	return &models.CompanyModel{
		ID:                 entity.ID(),
		Name:               entity.Name(),
		SubscriptionStatus: entity.SubscriptionStatus().String(),
		BillingCustomerID:  strPtr(entity.BillingCustomerID()),
		SubscriptionID:     strPtr(entity.SubscriptionID()),
		SubscriptionEndsAt: entity.SubscriptionEndsAt(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *CompanyMapperImpl) ToEntities(list []*models.CompanyModel) ([]*company.Company, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}
