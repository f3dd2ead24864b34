package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/note/dto"
	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type ListNotesUseCase struct {
	notes  note.Repository
	users  user.Repository
	logger logger.Interface
}

func NewListNotesUseCase(notes note.Repository, users user.Repository, logger logger.Interface) *ListNotesUseCase {
	return &ListNotesUseCase{
		notes:  notes,
		users:  users,
		logger: logger,
	}
}

// Execute lists the caller's company notes, newest first. An empty brandID
// lists notes about every brand.
func (uc *ListNotesUseCase) Execute(ctx context.Context, p *authorization.Principal, brandID string) ([]*dto.NoteResponse, error) {
	notes, err := uc.notes.ListByCompanyAndBrand(ctx, p.CompanyID, brandID)
	if err != nil {
		uc.logger.Errorw("failed to list notes", "company_id", p.CompanyID, "brand_id", brandID, "error", err)
		return nil, errors.WrapDependency(err)
	}

	members, err := uc.users.ListByCompanyID(ctx, p.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load note authors", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}

	authors := mapper.IndexBy(members, func(u *user.User) string { return u.ID() })
	return dto.ToNoteResponses(notes, authors), nil
}
