package usecases

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/brandvault/brandvault/internal/application/asset/dto"
	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/entitlement"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/infrastructure/upload"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/biztime"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type UploadAssetCommand struct {
	Filename    string
	ContentType string
	Content     []byte
	Category    string
	ProductName string
	Description string
	Tags        string
}

type UploadAssetResult struct {
	Asset   *asset.Asset
	URL     string
	Intents []notification.Intent
}

type UploadAssetUseCase struct {
	companies  company.Repository
	brands     brand.Repository
	assets     asset.Repository
	requests   accessrequest.Repository
	blobs      BlobStore
	dispatcher IntentDispatcher
	metrics    MetricsRecorder
	clock      biztime.Clock
	logger     logger.Interface
}

func NewUploadAssetUseCase(
	companies company.Repository,
	brands brand.Repository,
	assets asset.Repository,
	requests accessrequest.Repository,
	blobs BlobStore,
	dispatcher IntentDispatcher,
	metrics MetricsRecorder,
	clock biztime.Clock,
	logger logger.Interface,
) *UploadAssetUseCase {
	return &UploadAssetUseCase{
		companies:  companies,
		brands:     brands,
		assets:     assets,
		requests:   requests,
		blobs:      blobs,
		dispatcher: dispatcher,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *UploadAssetUseCase) Execute(ctx context.Context, p *authorization.Principal, cmd UploadAssetCommand) (*dto.UploadAssetResponse, error) {
	result, err := uc.Upload(ctx, p, cmd)
	if err != nil {
		return nil, err
	}
	uc.dispatcher.Dispatch(ctx, result.Intents...)
	return &dto.UploadAssetResponse{
		Asset: dto.ToAssetResponse(result.Asset),
		URL:   result.URL,
	}, nil
}

// Upload stores the blob first and the row second. A failed insert removes
// the blob again on a best-effort basis.
func (uc *UploadAssetUseCase) Upload(ctx context.Context, p *authorization.Principal, cmd UploadAssetCommand) (*UploadAssetResult, error) {
	c, err := uc.companies.GetByID(ctx, p.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if err := entitlement.EnsureCanWrite(c, entitlement.OperationAssetUpload); err != nil {
		return nil, err
	}

	b, err := uc.brands.GetByCompanyID(ctx, p.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load own brand", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError("Brand not found")
	}

	category, err := asset.ParseCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError("Invalid category. Supported: LOGO, PRODUCT, CAMPAIGN", cmd.Category)
	}
	if int64(len(cmd.Content)) > asset.MaxFileSize {
		return nil, errors.NewValidationError("File size must be less than 10MB")
	}

	filename := filepath.Base(strings.TrimSpace(cmd.Filename))
	if filename == "" || filename == "." || filename == "/" {
		return nil, errors.NewValidationError("File name is required")
	}

	inspected, err := upload.Inspect(cmd.ContentType, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError("Invalid file content", err.Error())
	}
	if err := asset.ValidateUpload(inspected.ContentType, int64(len(inspected.Content))); err != nil {
		return nil, err
	}

	key := asset.StorageKey(p.CompanyID, category, uc.clock.Now(), filename)
	url, err := uc.blobs.Put(ctx, key, inspected.ContentType, inspected.Content)
	if err != nil {
		uc.logger.Errorw("failed to store asset blob", "key", key, "error", err)
		return nil, errors.NewDependencyError(err)
	}

	a, err := asset.NewAsset(b.ID(), key, asset.Metadata{
		OriginalName: filename,
		FileType:     inspected.ContentType,
		Size:         int64(len(inspected.Content)),
		Category:     category,
		ProductName:  cmd.ProductName,
		Description:  cmd.Description,
		Tags:         asset.ParseTags(cmd.Tags),
	})
	if err != nil {
		uc.discardBlob(ctx, key)
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.assets.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create asset", "brand_id", b.ID(), "key", key, "error", err)
		uc.discardBlob(ctx, key)
		return nil, errors.WrapDependency(err)
	}

	uc.metrics.AssetUploaded(category.String())
	uc.logger.Infow("asset uploaded",
		"asset_id", a.ID(),
		"brand_id", b.ID(),
		"category", category,
		"size", a.Size(),
	)

	return &UploadAssetResult{
		Asset:   a,
		URL:     url,
		Intents: uc.newAssetIntents(ctx, b),
	}, nil
}

// newAssetIntents targets every company holding an APPROVED request on b.
// A lookup failure only costs the notification.
func (uc *UploadAssetUseCase) newAssetIntents(ctx context.Context, b *brand.Brand) []notification.Intent {
	approved, err := uc.requests.ListApprovedRequesterCompanyIDs(ctx, b.ID())
	if err != nil {
		uc.logger.Errorw("failed to list approved requesters", "brand_id", b.ID(), "error", err)
		return nil
	}
	if len(approved) == 0 {
		return nil
	}
	return []notification.Intent{notification.NewAssets(approved, b.Name(), 1)}
}

func (uc *UploadAssetUseCase) discardBlob(ctx context.Context, key string) {
	if err := uc.blobs.Delete(context.WithoutCancel(ctx), key); err != nil {
		uc.logger.Warnw("failed to discard orphaned blob", "key", key, "error", err)
	}
}
