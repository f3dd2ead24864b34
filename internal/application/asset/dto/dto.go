package dto

import (
	"fmt"
	"time"

	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type AssetResponse struct {
	ID           string    `json:"id"`
	BrandID      string    `json:"brandId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	FileType     string    `json:"fileType"`
	Size         int64     `json:"size"`
	Category     string    `json:"category"`
	ProductName  string    `json:"productName,omitempty"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags"`
	DownloadURL  string    `json:"downloadUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UploadAssetResponse struct {
	Asset *AssetResponse `json:"asset"`
	URL   string         `json:"url"`
}

type DownloadResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DownloadPath is the API route that issues a presigned URL for an asset.
func DownloadPath(assetID string) string {
	return fmt.Sprintf("/api/assets/%s/download", assetID)
}

func ToAssetResponse(a *asset.Asset) *AssetResponse {
	if a == nil {
		return nil
	}
	return &AssetResponse{
		ID:           a.ID(),
		BrandID:      a.BrandID(),
		Filename:     a.StorageKey(),
		OriginalName: a.OriginalName(),
		FileType:     a.FileType(),
		Size:         a.Size(),
		Category:     a.Category().String(),
		ProductName:  a.ProductName(),
		Description:  a.Description(),
		Tags:         a.Tags(),
		DownloadURL:  DownloadPath(a.ID()),
		CreatedAt:    a.CreatedAt(),
	}
}

// ToAssetResponses never returns nil.
func ToAssetResponses(assets []*asset.Asset) []*AssetResponse {
	out := mapper.MapSlicePtrSkipNil(assets, ToAssetResponse)
	if out == nil {
		out = []*AssetResponse{}
	}
	return out
}
