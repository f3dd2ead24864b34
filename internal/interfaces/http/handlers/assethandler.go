package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/application/asset/dto"
	"github.com/brandvault/brandvault/internal/application/asset/usecases"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/id"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

// multipartOverhead leaves room for form fields and part headers on top of
// the file ceiling.
const multipartOverhead = 1 << 20

type uploadAssetUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, cmd usecases.UploadAssetCommand) (*dto.UploadAssetResponse, error)
}

type deleteAssetUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, assetID string) error
}

type downloadAssetUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, assetID string) (*dto.DownloadResponse, error)
}

type AssetHandler struct {
	uploadUC   uploadAssetUseCase
	deleteUC   deleteAssetUseCase
	downloadUC downloadAssetUseCase
	logger     logger.Interface
}

func NewAssetHandler(
	uploadUC uploadAssetUseCase,
	deleteUC deleteAssetUseCase,
	downloadUC downloadAssetUseCase,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		uploadUC:   uploadUC,
		deleteUC:   deleteUC,
		downloadUC: downloadUC,
		logger:     logger,
	}
}

// Upload handles POST /assets (multipart: file, category, productName,
// description, tags).
func (h *AssetHandler) Upload(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, asset.MaxFileSize+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		h.logger.Warnw("upload without readable file part", "company_id", p.CompanyID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("No file provided"))
		return
	}
	if header.Size > asset.MaxFileSize {
		utils.ErrorResponseWithError(c, errors.NewValidationError("File size must be less than 10MB"))
		return
	}

	content, err := readPart(header)
	if err != nil {
		h.logger.Warnw("failed to read uploaded file", "company_id", p.CompanyID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Unable to read uploaded file"))
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), p, usecases.UploadAssetCommand{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
		Category:    c.PostForm("category"),
		ProductName: c.PostForm("productName"),
		Description: c.PostForm("description"),
		Tags:        c.PostForm("tags"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Asset uploaded successfully")
}

// Delete handles DELETE /assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	assetID, err := utils.ParseSIDParam(c, "id", id.PrefixAsset, "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), p, assetID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Download handles GET /assets/:id/download
func (h *AssetHandler) Download(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	assetID, err := utils.ParseSIDParam(c, "id", id.PrefixAsset, "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), p, assetID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, asset.MaxFileSize+1))
}
