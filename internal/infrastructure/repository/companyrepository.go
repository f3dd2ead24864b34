package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/mappers"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/db"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// CompanyRepository persists tenants and their subscription state.
type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
	logger logger.Interface
}

func NewCompanyRepository(db *gorm.DB, logger logger.Interface) company.Repository {
	return &CompanyRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
		logger: logger,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Company already exists")
		}
		r.logger.Errorw("failed to create company", "id", c.ID(), "error", err)
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*company.Company, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CompanyRepository) GetByBillingCustomerID(ctx context.Context, customerID string) (*company.Company, error) {
	if customerID == "" {
		return nil, nil
	}
	return r.first(ctx, "billing_customer_id = ?", customerID)
}

func (r *CompanyRepository) first(ctx context.Context, query string, arg interface{}) (*company.Company, error) {
	var model models.CompanyModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get company", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map company model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map company: %w", err)
	}
	return entity, nil
}

func (r *CompanyRepository) ListByIDs(ctx context.Context, ids []string) ([]*company.Company, error) {
	if len(ids) == 0 {
		return []*company.Company{}, nil
	}

	var list []*models.CompanyModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list companies by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := r.mapper.ToModel(c)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                 model.Name,
			"subscription_status":  model.SubscriptionStatus,
			"billing_customer_id":  model.BillingCustomerID,
			"subscription_id":      model.SubscriptionID,
			"subscription_ends_at": model.SubscriptionEndsAt,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("Billing customer already linked to another company")
		}
		r.logger.Errorw("failed to update company", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Company not found")
	}
	return nil
}
