package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/brand/dto"
	notedto "github.com/brandvault/brandvault/internal/application/note/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type GetBrandDetailUseCase struct {
	brands   brand.Repository
	notes    note.Repository
	users    user.Repository
	resolver *Resolver
	renderer dto.AboutRenderer
	logger   logger.Interface
}

func NewGetBrandDetailUseCase(
	brands brand.Repository,
	notes note.Repository,
	users user.Repository,
	resolver *Resolver,
	renderer dto.AboutRenderer,
	logger logger.Interface,
) *GetBrandDetailUseCase {
	return &GetBrandDetailUseCase{
		brands:   brands,
		notes:    notes,
		users:    users,
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute returns the resolved brand together with the viewer company's own
// notes about it, newest first.
func (uc *GetBrandDetailUseCase) Execute(ctx context.Context, p *authorization.Principal, brandID string) (*dto.BrandDetailResponse, error) {
	b, err := uc.brands.GetByID(ctx, brandID)
	if err != nil {
		uc.logger.Errorw("failed to load brand", "brand_id", brandID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError("Brand not found")
	}

	view, err := uc.resolver.Resolve(ctx, p.CompanyID, b)
	if err != nil {
		return nil, err
	}
	resp, err := dto.ToBrandViewResponse(view, uc.renderer)
	if err != nil {
		return nil, err
	}

	notes, err := uc.notes.ListByCompanyAndBrand(ctx, p.CompanyID, b.ID())
	if err != nil {
		uc.logger.Errorw("failed to load notes", "company_id", p.CompanyID, "brand_id", b.ID(), "error", err)
		return nil, errors.WrapDependency(err)
	}
	members, err := uc.users.ListByCompanyID(ctx, p.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company members", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	authors := mapper.IndexBy(members, func(u *user.User) string { return u.ID() })

	return &dto.BrandDetailResponse{
		Brand: resp,
		Notes: notedto.ToNoteResponses(notes, authors),
	}, nil
}
