package models

import (
	"time"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

// AccessRequestModel enforces one request per (requester, target) pair with
// the idx_requester_target unique index.
type AccessRequestModel struct {
	ID                 string `gorm:"primaryKey;size:32"`
	RequesterCompanyID string `gorm:"size:32;not null;uniqueIndex:idx_requester_target,priority:1"`
	TargetBrandID      string `gorm:"size:32;not null;uniqueIndex:idx_requester_target,priority:2;index:idx_target_status,priority:1"`
	Status             string `gorm:"size:20;not null;default:'PENDING';index:idx_target_status,priority:2"`
	AccessType         string `gorm:"size:20;not null;default:'FULL'"`
	Message            string `gorm:"type:text"`
	ApprovedAt         *time.Time
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

func (AccessRequestModel) TableName() string {
	return constants.TableAccessRequests
}
