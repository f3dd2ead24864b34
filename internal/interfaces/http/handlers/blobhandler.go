package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

// SignedBlobOpener resolves a presigned download to a local file path.
type SignedBlobOpener interface {
	Open(key, token string) (string, error)
	TokenParam() string
}

// BlobHandler serves files of the local blob driver behind presigned URLs.
type BlobHandler struct {
	blobs  SignedBlobOpener
	logger logger.Interface
}

func NewBlobHandler(blobs SignedBlobOpener, logger logger.Interface) *BlobHandler {
	return &BlobHandler{blobs: blobs, logger: logger}
}

// Serve handles GET /uploads/*key. Every rejection looks like a missing file.
func (h *BlobHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	path, err := h.blobs.Open(key, c.Query(h.blobs.TokenParam()))
	if err != nil {
		h.logger.Debugw("rejected blob download", "key", key, "error", err)
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("File not found"))
		return
	}

	c.Header("Cache-Control", "private, no-store")
	c.File(path)
}
