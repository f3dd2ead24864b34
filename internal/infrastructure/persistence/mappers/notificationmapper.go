package mappers

import (
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
	ToModels(entities []*notification.Notification) []*models.NotificationModel
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}
	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		notification.Type(model.Type),
		model.Title,
		model.Content,
		model.Read,
		model.CreatedAt,
	)
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}
	return &models.NotificationModel{
		ID:          entity.ID(),
		RecipientID: entity.RecipientID(),
		Type:        entity.Type().String(),
		Title:       entity.Title(),
		Content:     entity.Content(),
		Read:        entity.IsRead(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToEntities(list []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSliceWithError(list, m.ToEntity)
}

func (m *NotificationMapperImpl) ToModels(entities []*notification.Notification) []*models.NotificationModel {
	return mapper.MapSlicePtrSkipNil(entities, m.ToModel)
}
