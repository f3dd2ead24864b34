package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

type BrandModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	CompanyID   string `gorm:"size:32;not null;uniqueIndex"`
	Name        string `gorm:"size:200;not null;index"`
	About       string `gorm:"type:text"`
	Website     string `gorm:"size:500"`
	ContactInfo string `gorm:"size:500"`
	// JSON object of platform -> URL
	SocialLinks datatypes.JSON
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (BrandModel) TableName() string {
	return constants.TableBrands
}
