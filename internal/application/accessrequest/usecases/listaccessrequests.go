package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/accessrequest/dto"
	"github.com/brandvault/brandvault/internal/domain/accessrequest"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type ListAccessRequestsUseCase struct {
	companies company.Repository
	brands    brand.Repository
	requests  accessrequest.Repository
	logger    logger.Interface
}

func NewListAccessRequestsUseCase(
	companies company.Repository,
	brands brand.Repository,
	requests accessrequest.Repository,
	logger logger.Interface,
) *ListAccessRequestsUseCase {
	return &ListAccessRequestsUseCase{
		companies: companies,
		brands:    brands,
		requests:  requests,
		logger:    logger,
	}
}

// Execute lists requests sent by the viewer's company, decorated with the
// target brand name, or received by its brand, decorated with the requester
// company name.
func (uc *ListAccessRequestsUseCase) Execute(ctx context.Context, p *authorization.Principal, listType dto.ListType) (*dto.ListAccessRequestsResponse, error) {
	var (
		items []*dto.AccessRequestResponse
		err   error
	)
	switch listType {
	case dto.ListTypeSent:
		items, err = uc.sent(ctx, p.CompanyID)
	case dto.ListTypeReceived:
		items, err = uc.received(ctx, p.CompanyID)
	default:
		return nil, errors.NewValidationError("type must be sent or received", string(listType))
	}
	if err != nil {
		return nil, err
	}
	return &dto.ListAccessRequestsResponse{Type: listType, Requests: items}, nil
}

func (uc *ListAccessRequestsUseCase) sent(ctx context.Context, companyID string) ([]*dto.AccessRequestResponse, error) {
	requests, err := uc.requests.ListByRequester(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to list sent access requests", "company_id", companyID, "error", err)
		return nil, errors.WrapDependency(err)
	}

	brandIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		brandIDs = append(brandIDs, r.TargetBrandID())
	}
	brands, err := uc.brands.ListByIDs(ctx, brandIDs)
	if err != nil {
		uc.logger.Errorw("failed to load target brands", "company_id", companyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	names := make(map[string]string, len(brands))
	for _, b := range brands {
		names[b.ID()] = b.Name()
	}

	out := make([]*dto.AccessRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp := dto.ToAccessRequestResponse(r)
		resp.BrandName = names[r.TargetBrandID()]
		out = append(out, resp)
	}
	return out, nil
}

func (uc *ListAccessRequestsUseCase) received(ctx context.Context, companyID string) ([]*dto.AccessRequestResponse, error) {
	own, err := uc.brands.GetByCompanyID(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load own brand", "company_id", companyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if own == nil {
		return []*dto.AccessRequestResponse{}, nil
	}

	requests, err := uc.requests.ListByTargetBrand(ctx, own.ID())
	if err != nil {
		uc.logger.Errorw("failed to list received access requests", "brand_id", own.ID(), "error", err)
		return nil, errors.WrapDependency(err)
	}

	companyIDs := make([]string, 0, len(requests))
	for _, r := range requests {
		companyIDs = append(companyIDs, r.RequesterCompanyID())
	}
	companies, err := uc.companies.ListByIDs(ctx, companyIDs)
	if err != nil {
		uc.logger.Errorw("failed to load requester companies", "brand_id", own.ID(), "error", err)
		return nil, errors.WrapDependency(err)
	}
	names := make(map[string]string, len(companies))
	for _, c := range companies {
		names[c.ID()] = c.Name()
	}

	out := make([]*dto.AccessRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp := dto.ToAccessRequestResponse(r)
		resp.BrandName = own.Name()
		resp.RequesterCompanyName = names[r.RequesterCompanyID()]
		out = append(out, resp)
	}
	return out, nil
}
