package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/mappers"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/db"
	apperrors "github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type AccessRequestRepository struct {
	db     *gorm.DB
	mapper mappers.AccessRequestMapper
	logger logger.Interface
}

func NewAccessRequestRepository(db *gorm.DB, logger logger.Interface) accessrequest.Repository {
	return &AccessRequestRepository{
		db:     db,
		mapper: mappers.NewAccessRequestMapper(),
		logger: logger,
	}
}

// Create relies on idx_requester_target to reject a second request for the same pair.
func (r *AccessRequestRepository) Create(ctx context.Context, req *accessrequest.AccessRequest) error {
	model := r.mapper.ToModel(req)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Access request already exists")
		}
		r.logger.Errorw("failed to create access request", "error", err)
		return fmt.Errorf("failed to create access request: %w", err)
	}
	return nil
}

func (r *AccessRequestRepository) GetByID(ctx context.Context, id string) (*accessrequest.AccessRequest, error) {
	return r.first(ctx, db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *AccessRequestRepository) FindByPair(ctx context.Context, requesterCompanyID, targetBrandID string) (*accessrequest.AccessRequest, error) {
	return r.first(ctx, db.GetTxFromContext(ctx, r.db).
		Where("requester_company_id = ? AND target_brand_id = ?", requesterCompanyID, targetBrandID))
}

func (r *AccessRequestRepository) first(_ context.Context, tx *gorm.DB) (*accessrequest.AccessRequest, error) {
	var model models.AccessRequestModel
	if err := tx.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get access request", "error", err)
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map access request model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map access request: %w", err)
	}
	return entity, nil
}

func (r *AccessRequestRepository) ListByRequesterForTargets(ctx context.Context, requesterCompanyID string, targetBrandIDs []string) (map[string]*accessrequest.AccessRequest, error) {
	byTarget := make(map[string]*accessrequest.AccessRequest, len(targetBrandIDs))
	if requesterCompanyID == "" || len(targetBrandIDs) == 0 {
		return byTarget, nil
	}

	var list []*models.AccessRequestModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("requester_company_id = ? AND target_brand_id IN ?", requesterCompanyID, targetBrandIDs).
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list access requests for targets", "requester_company_id", requesterCompanyID, "error", err)
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}

	entities, err := r.mapper.ToEntities(list)
	if err != nil {
		return nil, fmt.Errorf("failed to map access requests: %w", err)
	}
	for _, req := range entities {
		byTarget[req.TargetBrandID()] = req
	}
	return byTarget, nil
}

func (r *AccessRequestRepository) ListByRequester(ctx context.Context, requesterCompanyID string) ([]*accessrequest.AccessRequest, error) {
	return r.list(ctx, "requester_company_id = ?", requesterCompanyID)
}

func (r *AccessRequestRepository) ListByTargetBrand(ctx context.Context, targetBrandID string) ([]*accessrequest.AccessRequest, error) {
	return r.list(ctx, "target_brand_id = ?", targetBrandID)
}

func (r *AccessRequestRepository) list(ctx context.Context, query string, arg interface{}) ([]*accessrequest.AccessRequest, error) {
	var list []*models.AccessRequestModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where(query, arg).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list access requests", "query", query, "error", err)
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}
	return r.mapper.ToEntities(list)
}

func (r *AccessRequestRepository) ListApprovedRequesterCompanyIDs(ctx context.Context, targetBrandID string) ([]string, error) {
	ids := []string{}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AccessRequestModel{}).
		Where("target_brand_id = ? AND status = ?", targetBrandID, accessrequest.StatusApproved.String()).
		Pluck("requester_company_id", &ids).Error; err != nil {
		r.logger.Errorw("failed to list approved requesters", "target_brand_id", targetBrandID, "error", err)
		return nil, fmt.Errorf("failed to list approved requesters: %w", err)
	}
	return ids, nil
}

// SaveTransition is a compare-and-set on status; losing a race yields a ConflictError.
func (r *AccessRequestRepository) SaveTransition(ctx context.Context, req *accessrequest.AccessRequest, from accessrequest.Status) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AccessRequestModel{}).
		Where("id = ? AND status = ?", req.ID(), from.String()).
		Updates(map[string]interface{}{
			"status":      req.Status().String(),
			"approved_at": req.ApprovedAt(),
			"updated_at":  req.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to save access request transition", "id", req.ID(), "error", result.Error)
		return fmt.Errorf("failed to update access request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("Access request has already been decided")
	}
	return nil
}
