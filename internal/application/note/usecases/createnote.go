package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/note/dto"
	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type CreateNoteUseCase struct {
	brands    brand.Repository
	notes     note.Repository
	users     user.Repository
	sanitizer ContentSanitizer
	logger    logger.Interface
}

func NewCreateNoteUseCase(
	brands brand.Repository,
	notes note.Repository,
	users user.Repository,
	sanitizer ContentSanitizer,
	logger logger.Interface,
) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		brands:    brands,
		notes:     notes,
		users:     users,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *CreateNoteUseCase) Execute(ctx context.Context, p *authorization.Principal, brandID, content string) (*dto.NoteResponse, error) {
	b, err := uc.brands.GetByID(ctx, brandID)
	if err != nil {
		uc.logger.Errorw("failed to load brand", "brand_id", brandID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError("Brand not found")
	}

	n, err := note.NewNote(b.ID(), p.CompanyID, p.UserID, uc.sanitizer.StripTags(content))
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.notes.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to create note", "brand_id", b.ID(), "error", err)
		return nil, errors.WrapDependency(err)
	}

	author, err := uc.users.GetByID(ctx, p.UserID)
	if err != nil {
		uc.logger.Warnw("failed to load note author", "user_id", p.UserID, "error", err)
		author = nil
	}

	uc.logger.Infow("note created", "note_id", n.ID(), "brand_id", b.ID(), "user_id", p.UserID)
	return dto.ToNoteResponse(n, author), nil
}
