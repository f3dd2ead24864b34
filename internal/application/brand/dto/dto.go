package dto

import (
	"time"

	assetdto "github.com/brandvault/brandvault/internal/application/asset/dto"
	notedto "github.com/brandvault/brandvault/internal/application/note/dto"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/visibility"
)

// AboutRenderer turns the markdown about text into sanitised HTML.
type AboutRenderer interface {
	ToHTML(markdown string) (string, error)
}

type UpdateBrandRequest struct {
	Name        string            `json:"name" binding:"required,max=200"`
	About       string            `json:"about" binding:"max=10000"`
	Website     string            `json:"website" binding:"omitempty,url"`
	ContactInfo string            `json:"contactInfo" binding:"max=1000"`
	SocialLinks map[string]string `json:"socialLinks"`
}

type QuickCreateBrandRequest struct {
	BrandName   string `json:"brandName" binding:"required,max=200"`
	CompanyName string `json:"companyName" binding:"required,max=200"`
	About       string `json:"about" binding:"max=10000"`
	Website     string `json:"website" binding:"omitempty,url"`
	ContactInfo string `json:"contactInfo" binding:"max=1000"`
}

// BrandViewResponse is a resolved brand. Fields tagged omitempty after
// AccessType only appear in full views.
type BrandViewResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	About        string  `json:"about"`
	AboutHTML    string  `json:"aboutHtml"`
	Website      string  `json:"website"`
	CompanyName  string  `json:"companyName"`
	HasAccess    bool    `json:"hasAccess"`
	IsOwnBrand   bool    `json:"isOwnBrand"`
	AccessStatus *string `json:"accessStatus"`
	AccessType   *string `json:"accessType"`

	CompanyID   string                    `json:"companyId,omitempty"`
	ContactInfo string                    `json:"contactInfo,omitempty"`
	SocialLinks map[string]string         `json:"socialLinks,omitempty"`
	Assets      []*assetdto.AssetResponse `json:"assets,omitempty"`
	AssetCounts *asset.Counts             `json:"assetCounts,omitempty"`
	LastUpdated *time.Time                `json:"lastUpdated,omitempty"`
}

type BrandDetailResponse struct {
	Brand *BrandViewResponse      `json:"brand"`
	Notes []*notedto.NoteResponse `json:"notes"`
}

type BrandListResponse struct {
	Brands []*BrandViewResponse `json:"brands"`
}

type QuickCreateBrandResponse struct {
	BrandID     string `json:"brandId"`
	BrandName   string `json:"brandName"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
}

func ToBrandViewResponse(v visibility.View, renderer AboutRenderer) (*BrandViewResponse, error) {
	aboutHTML, err := renderer.ToHTML(v.About)
	if err != nil {
		return nil, err
	}

	resp := &BrandViewResponse{
		ID:          v.BrandID,
		Name:        v.Name,
		About:       v.About,
		AboutHTML:   aboutHTML,
		Website:     v.Website,
		CompanyName: v.CompanyName,
		HasAccess:   v.HasAccess(),
		IsOwnBrand:  v.Access.IsOwnBrand,
	}
	if v.Access.Status != nil {
		s := v.Access.Status.String()
		resp.AccessStatus = &s
	}
	if v.Access.AccessType != nil {
		t := v.Access.AccessType.String()
		resp.AccessType = &t
	}

	if !v.HasAccess() {
		return resp, nil
	}

	resp.CompanyID = v.CompanyID
	resp.ContactInfo = v.ContactInfo
	resp.SocialLinks = v.SocialLinks
	resp.Assets = assetdto.ToAssetResponses(v.Assets)
	resp.AssetCounts = v.Counts
	updated := v.UpdatedAt
	resp.LastUpdated = &updated
	return resp, nil
}

// LastUpdated is the newest asset upload of a full view, else the brand's own
// update time.
func LastUpdated(v visibility.View, b *brand.Brand) time.Time {
	latest := b.UpdatedAt()
	if !v.HasAccess() || len(v.Assets) == 0 {
		return latest
	}
	latest = v.Assets[0].CreatedAt()
	for _, a := range v.Assets[1:] {
		if a.CreatedAt().After(latest) {
			latest = a.CreatedAt()
		}
	}
	return latest
}

func ToQuickCreateBrandResponse(c *company.Company, b *brand.Brand) *QuickCreateBrandResponse {
	return &QuickCreateBrandResponse{
		BrandID:     b.ID(),
		BrandName:   b.Name(),
		CompanyID:   c.ID(),
		CompanyName: c.Name(),
	}
}
