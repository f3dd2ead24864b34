package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

type AssetModel struct {
	ID           string `gorm:"primaryKey;size:32"`
	BrandID      string `gorm:"size:32;not null;index:idx_asset_brand_created,priority:1"`
	Filename     string `gorm:"size:512;not null"`
	OriginalName string `gorm:"size:255;not null"`
	FileType     string `gorm:"size:100;not null"`
	Size         int64  `gorm:"not null"`
	Category     string `gorm:"size:20;not null;index"`
	ProductName  string `gorm:"size:200"`
	Description  string `gorm:"type:text"`
	// JSON array of strings in entry order
	Tags      datatypes.JSON
	CreatedAt time.Time `gorm:"index:idx_asset_brand_created,priority:2"`
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}
