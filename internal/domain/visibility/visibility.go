// Package visibility projects a brand for a viewer. It is the only place that
// decides which brand fields and assets a company may see.
package visibility

import (
	"time"

	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
)

type Level string

const (
	LevelFull    Level = "FULL"
	LevelLimited Level = "LIMITED"
)

// Access is the outcome of Decide for one (viewer, brand) pair.
type Access struct {
	Level      Level
	IsOwnBrand bool
	// Status of the viewer's request, nil when none exists or the brand is the viewer's own.
	Status *accessrequest.Status
	// AccessType granted by an approved request.
	AccessType *accessrequest.AccessType
}

func (a Access) IsFull() bool {
	return a.Level == LevelFull
}

// Decide grants full access to the owner or to a viewer whose request on the
// brand is APPROVED. A request that belongs to another pair is ignored.
// An empty viewerCompanyID is an anonymous viewer.
func Decide(viewerCompanyID string, b *brand.Brand, req *accessrequest.AccessRequest) Access {
	if viewerCompanyID != "" && b.CompanyID() == viewerCompanyID {
		return Access{Level: LevelFull, IsOwnBrand: true}
	}

	if viewerCompanyID == "" || req == nil ||
		req.RequesterCompanyID() != viewerCompanyID || req.TargetBrandID() != b.ID() {
		return Access{Level: LevelLimited}
	}

	status := req.Status()
	if status.GrantsAccess() {
		accessType := req.AccessType()
		return Access{Level: LevelFull, Status: &status, AccessType: &accessType}
	}
	return Access{Level: LevelLimited, Status: &status}
}

// View is the projected brand. Fields after CompanyName are populated only
// for full views.
type View struct {
	Access Access

	BrandID     string
	Name        string
	About       string
	Website     string
	CompanyName string

	CompanyID   string
	ContactInfo string
	SocialLinks brand.SocialLinks
	Assets      []*asset.Asset
	Counts      *asset.Counts
	UpdatedAt   time.Time
}

// HasAccess reports whether assets are visible.
func (v View) HasAccess() bool {
	return v.Access.IsFull()
}

// Project renders b according to access. assets is ignored for limited views.
func Project(access Access, b *brand.Brand, companyName string, assets []*asset.Asset) View {
	v := View{
		Access:      access,
		BrandID:     b.ID(),
		Name:        b.Name(),
		About:       b.About(),
		Website:     b.Website(),
		CompanyName: companyName,
	}
	if !access.IsFull() {
		return v
	}

	if assets == nil {
		assets = []*asset.Asset{}
	}
	counts := asset.CountByCategory(assets)
	v.CompanyID = b.CompanyID()
	v.ContactInfo = b.ContactInfo()
	v.SocialLinks = b.SocialLinks()
	v.Assets = assets
	v.Counts = &counts
	v.UpdatedAt = b.UpdatedAt()
	return v
}

// Resolve is Decide followed by Project.
func Resolve(viewerCompanyID string, b *brand.Brand, companyName string, req *accessrequest.AccessRequest, assets []*asset.Asset) View {
	return Project(Decide(viewerCompanyID, b, req), b, companyName, assets)
}
