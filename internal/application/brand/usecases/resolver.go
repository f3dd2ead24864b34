package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/asset"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/visibility"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// Resolver loads what visibility needs for a set of brands in a fixed number
// of queries and projects each brand for the viewer. It never writes.
type Resolver struct {
	companies company.Repository
	requests  accessrequest.Repository
	assets    asset.Repository
	logger    logger.Interface
}

func NewResolver(
	companies company.Repository,
	requests accessrequest.Repository,
	assets asset.Repository,
	logger logger.Interface,
) *Resolver {
	return &Resolver{
		companies: companies,
		requests:  requests,
		assets:    assets,
		logger:    logger,
	}
}

// Access decides the viewer's access to one brand without loading assets.
func (r *Resolver) Access(ctx context.Context, viewerCompanyID string, b *brand.Brand) (visibility.Access, error) {
	if viewerCompanyID == "" || b.IsOwnedBy(viewerCompanyID) {
		return visibility.Decide(viewerCompanyID, b, nil), nil
	}
	req, err := r.requests.FindByPair(ctx, viewerCompanyID, b.ID())
	if err != nil {
		r.logger.Errorw("failed to load access request", "viewer_company_id", viewerCompanyID, "brand_id", b.ID(), "error", err)
		return visibility.Access{}, errors.WrapDependency(err)
	}
	return visibility.Decide(viewerCompanyID, b, req), nil
}

func (r *Resolver) Resolve(ctx context.Context, viewerCompanyID string, b *brand.Brand) (visibility.View, error) {
	views, err := r.ResolveMany(ctx, viewerCompanyID, []*brand.Brand{b})
	if err != nil {
		return visibility.View{}, err
	}
	return views[0], nil
}

// ResolveMany keeps the order of brands. An empty viewerCompanyID resolves
// every brand as an anonymous viewer.
func (r *Resolver) ResolveMany(ctx context.Context, viewerCompanyID string, brands []*brand.Brand) ([]visibility.View, error) {
	if len(brands) == 0 {
		return []visibility.View{}, nil
	}

	brandIDs := make([]string, 0, len(brands))
	companyIDs := make([]string, 0, len(brands))
	seen := make(map[string]bool, len(brands))
	for _, b := range brands {
		brandIDs = append(brandIDs, b.ID())
		if !seen[b.CompanyID()] {
			seen[b.CompanyID()] = true
			companyIDs = append(companyIDs, b.CompanyID())
		}
	}

	companies, err := r.companies.ListByIDs(ctx, companyIDs)
	if err != nil {
		r.logger.Errorw("failed to load brand companies", "count", len(companyIDs), "error", err)
		return nil, errors.WrapDependency(err)
	}
	companyNames := make(map[string]string, len(companies))
	for _, c := range companies {
		companyNames[c.ID()] = c.Name()
	}

	requests, err := r.requests.ListByRequesterForTargets(ctx, viewerCompanyID, brandIDs)
	if err != nil {
		r.logger.Errorw("failed to load viewer access requests", "viewer_company_id", viewerCompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}

	decisions := make([]visibility.Access, len(brands))
	var fullBrandIDs []string
	for i, b := range brands {
		decisions[i] = visibility.Decide(viewerCompanyID, b, requests[b.ID()])
		if decisions[i].IsFull() {
			fullBrandIDs = append(fullBrandIDs, b.ID())
		}
	}

	assetsByBrand := map[string][]*asset.Asset{}
	if len(fullBrandIDs) > 0 {
		assetsByBrand, err = r.assets.ListByBrandIDs(ctx, fullBrandIDs)
		if err != nil {
			r.logger.Errorw("failed to load brand assets", "count", len(fullBrandIDs), "error", err)
			return nil, errors.WrapDependency(err)
		}
	}

	views := make([]visibility.View, len(brands))
	for i, b := range brands {
		views[i] = visibility.Project(decisions[i], b, companyNames[b.CompanyID()], assetsByBrand[b.ID()])
	}
	return views, nil
}
