package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/mappers"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/db"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type BrandRepository struct {
	db     *gorm.DB
	mapper mappers.BrandMapper
	logger logger.Interface
}

func NewBrandRepository(db *gorm.DB, logger logger.Interface) brand.Repository {
	return &BrandRepository{
		db:     db,
		mapper: mappers.NewBrandMapper(),
		logger: logger,
	}
}

func (r *BrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		return fmt.Errorf("failed to map brand entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Company already has a brand")
		}
		r.logger.Errorw("failed to create brand", "company_id", model.CompanyID, "error", err)
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id string) (*brand.Brand, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *BrandRepository) GetByCompanyID(ctx context.Context, companyID string) (*brand.Brand, error) {
	return r.first(ctx, "company_id = ?", companyID)
}

func (r *BrandRepository) first(ctx context.Context, query string, arg interface{}) (*brand.Brand, error) {
	var model models.BrandModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get brand", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map brand model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map brand: %w", err)
	}
	return entity, nil
}

func (r *BrandRepository) ListByIDs(ctx context.Context, ids []string) ([]*brand.Brand, error) {
	if len(ids) == 0 {
		return []*brand.Brand{}, nil
	}
	var list []*models.BrandModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list brands by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *BrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	model, err := r.mapper.ToModel(b)
	if err != nil {
		return fmt.Errorf("failed to map brand entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.BrandModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"about":        model.About,
			"website":      model.Website,
			"contact_info": model.ContactInfo,
			"social_links": model.SocialLinks,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update brand", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Brand not found")
	}
	return nil
}

func (r *BrandRepository) SearchByName(ctx context.Context, query, excludeCompanyID string, limit int) ([]*brand.Brand, error) {
	pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"

	tx := db.GetTxFromContext(ctx, r.db).
		Where("LOWER(name) LIKE ? ESCAPE '!'", pattern)
	if excludeCompanyID != "" {
		tx = tx.Where("company_id <> ?", excludeCompanyID)
	}

	var list []*models.BrandModel
	if err := tx.Order("updated_at DESC").Limit(limit).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to search brands", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search brands: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *BrandRepository) ListRecent(ctx context.Context, limit int) ([]*brand.Brand, error) {
	var list []*models.BrandModel
	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list recent brands", "error", err)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
