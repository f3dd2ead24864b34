package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/mappers"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/db"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts the user; a taken email surfaces as a ConflictError.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("User already exists")
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Infow("user created successfully", "id", model.ID, "company_id", model.CompanyID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}
	return entity, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check email existence", "error", err)
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

// ListByCompanyID returns the company's users oldest first, so the master leads.
func (r *UserRepository) ListByCompanyID(ctx context.Context, companyID string) ([]*user.User, error) {
	var list []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list users", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *UserRepository) ListIDsByCompanyIDs(ctx context.Context, companyIDs []string) ([]string, error) {
	ids := []string{}
	if len(companyIDs) == 0 {
		return ids, nil
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("company_id IN ?", companyIDs).
		Pluck("id", &ids).Error; err != nil {
		r.logger.Errorw("failed to list user IDs by companies", "count", len(companyIDs), "error", err)
		return nil, fmt.Errorf("failed to list user IDs: %w", err)
	}
	return ids, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.UserModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}
