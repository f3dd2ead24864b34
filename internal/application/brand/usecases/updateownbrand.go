package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/entitlement"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type UpdateOwnBrandCommand struct {
	Name        string
	About       string
	Website     string
	ContactInfo string
	SocialLinks map[string]string
}

type UpdateOwnBrandUseCase struct {
	companies company.Repository
	brands    brand.Repository
	resolver  *Resolver
	renderer  dto.AboutRenderer
	logger    logger.Interface
}

func NewUpdateOwnBrandUseCase(
	companies company.Repository,
	brands brand.Repository,
	resolver *Resolver,
	renderer dto.AboutRenderer,
	logger logger.Interface,
) *UpdateOwnBrandUseCase {
	return &UpdateOwnBrandUseCase{
		companies: companies,
		brands:    brands,
		resolver:  resolver,
		renderer:  renderer,
		logger:    logger,
	}
}

func (uc *UpdateOwnBrandUseCase) Execute(ctx context.Context, p *authorization.Principal, cmd UpdateOwnBrandCommand) (*dto.BrandViewResponse, error) {
	c, err := uc.companies.GetByID(ctx, p.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if err := entitlement.EnsureCanWrite(c, entitlement.OperationBrandUpdate); err != nil {
		return nil, err
	}

	b, err := loadOwnBrand(ctx, uc.brands, p.CompanyID, uc.logger)
	if err != nil {
		return nil, err
	}

	if err := b.UpdateProfile(brand.Profile{
		Name:        cmd.Name,
		About:       cmd.About,
		Website:     cmd.Website,
		ContactInfo: cmd.ContactInfo,
		SocialLinks: cmd.SocialLinks,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.brands.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update brand", "brand_id", b.ID(), "error", err)
		return nil, errors.WrapDependency(err)
	}

	uc.logger.Infow("brand profile updated", "brand_id", b.ID(), "user_id", p.UserID)

	view, err := uc.resolver.Resolve(ctx, p.CompanyID, b)
	if err != nil {
		return nil, err
	}
	return dto.ToBrandViewResponse(view, uc.renderer)
}
