package models

import (
	"time"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

type NotificationModel struct {
	ID          string    `gorm:"primaryKey;size:32"`
	RecipientID string    `gorm:"size:32;not null;index:idx_recipient_read,priority:1"`
	Type        string    `gorm:"size:32;not null"`
	Title       string    `gorm:"size:255;not null"`
	Content     string    `gorm:"type:text;not null"`
	Read        bool      `gorm:"not null;default:false;index:idx_recipient_read,priority:2"`
	CreatedAt   time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
