package models

import (
	"time"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

type CompanyModel struct {
	ID                 string  `gorm:"primaryKey;size:32"`
	Name               string  `gorm:"size:200;not null"`
	SubscriptionStatus string  `gorm:"size:20;not null;default:'UNPAID';index"`
	BillingCustomerID  *string `gorm:"size:64;uniqueIndex"`
	SubscriptionID     *string `gorm:"size:64;index"`
	SubscriptionEndsAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
