package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/mappers"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/db"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type NoteRepository struct {
	db     *gorm.DB
	mapper mappers.NoteMapper
	logger logger.Interface
}

func NewNoteRepository(db *gorm.DB, logger logger.Interface) note.Repository {
	return &NoteRepository{
		db:     db,
		mapper: mappers.NewNoteMapper(),
		logger: logger,
	}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(n)).Error; err != nil {
		r.logger.Errorw("failed to create note", "brand_id", n.BrandID(), "error", err)
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*note.Note, error) {
	var model models.NoteModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get note", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

// ListByCompanyAndBrand returns the company's notes newest first.
// An empty brandID lists notes across all brands.
func (r *NoteRepository) ListByCompanyAndBrand(ctx context.Context, companyID, brandID string) ([]*note.Note, error) {
	tx := db.GetTxFromContext(ctx, r.db).Where("company_id = ?", companyID)
	if brandID != "" {
		tx = tx.Where("brand_id = ?", brandID)
	}

	var list []*models.NoteModel
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list notes", "company_id", companyID, "brand_id", brandID, "error", err)
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.NoteModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete note", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Note not found")
	}
	return nil
}
