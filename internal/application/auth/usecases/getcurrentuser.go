package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	users     user.Repository
	companies company.Repository
	brands    brand.Repository
	logger    logger.Interface
}

func NewGetCurrentUserUseCase(
	users user.Repository,
	companies company.Repository,
	brands brand.Repository,
	logger logger.Interface,
) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		users:     users,
		companies: companies,
		brands:    brands,
		logger:    logger,
	}
}

// Execute fails with an authentication error when the session outlived its user.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.MeResponse, error) {
	u, err := uc.users.GetByID(ctx, p.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load current user", "user_id", p.UserID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("User no longer exists")
	}

	c, err := uc.companies.GetByID(ctx, u.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", u.CompanyID(), "error", err)
		return nil, errors.WrapDependency(err)
	}
	b, err := uc.brands.GetByCompanyID(ctx, u.CompanyID())
	if err != nil {
		uc.logger.Errorw("failed to load brand", "company_id", u.CompanyID(), "error", err)
		return nil, errors.WrapDependency(err)
	}

	resp := &dto.MeResponse{
		User:    dto.ToUserResponse(u),
		Company: dto.ToCompanySummary(c),
	}
	if b != nil {
		id := b.ID()
		resp.BrandID = &id
	}
	return resp, nil
}
