package models

import (
	"time"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

type UserModel struct {
	ID           string    `gorm:"primaryKey;size:32"`
	CompanyID    string    `gorm:"size:32;not null;index"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null"`
	Role         string    `gorm:"size:20;not null;default:'USER'"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
