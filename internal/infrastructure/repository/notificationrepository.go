package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/mappers"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/db"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

const notificationBatchSize = 100

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, logger logger.Interface) notification.Repository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

func (r *NotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	list := r.mapper.ToModels(notifications)
	if err := db.GetTxFromContext(ctx, r.db).CreateInBatches(list, notificationBatchSize).Error; err != nil {
		r.logger.Errorw("failed to bulk create notifications", "count", len(list), "error", err)
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]*notification.Notification, error) {
	tx := db.GetTxFromContext(ctx, r.db).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		tx = tx.Where("`read` = ?", false)
	}

	var list []*models.NotificationModel
	if err := tx.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "recipient_id", recipientID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND `read` = ?", recipientID, false).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count unread notifications", "recipient_id", recipientID, "error", err)
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read", true)
	if result.Error != nil {
		r.logger.Errorw("failed to mark notification read", "id", id, "error", result.Error)
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND `read` = ?", recipientID, false).
		Update("read", true)
	if result.Error != nil {
		r.logger.Errorw("failed to mark all notifications read", "recipient_id", recipientID, "error", result.Error)
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

