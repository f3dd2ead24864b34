package models

import (
	"time"

	"github.com/brandvault/brandvault/internal/shared/constants"
)

type NoteModel struct {
	ID        string    `gorm:"primaryKey;size:32"`
	CompanyID string    `gorm:"size:32;not null;index:idx_note_company_brand,priority:1"`
	BrandID   string    `gorm:"size:32;not null;index:idx_note_company_brand,priority:2"`
	AuthorID  string    `gorm:"size:32;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (NoteModel) TableName() string {
	return constants.TableNotes
}
