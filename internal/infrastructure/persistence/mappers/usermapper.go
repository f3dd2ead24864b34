package mappers

import (
	"fmt"

	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	role, err := user.ParseRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.CompanyID,
		model.Email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		role,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		CompanyID:    entity.CompanyID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		Role:         entity.Role().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}
