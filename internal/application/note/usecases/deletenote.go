package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/note"
	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type DeleteNoteUseCase struct {
	notes    note.Repository
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewDeleteNoteUseCase(notes note.Repository, enforcer permission.Enforcer, logger logger.Interface) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		notes:    notes,
		enforcer: enforcer,
		logger:   logger,
	}
}

// Execute lets the author delete a note, as well as any role holding note
// moderation within the same company.
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, p *authorization.Principal, noteID string) error {
	n, err := uc.notes.GetByID(ctx, noteID)
	if err != nil {
		uc.logger.Errorw("failed to load note", "note_id", noteID, "error", err)
		return errors.WrapDependency(err)
	}
	if n == nil {
		return errors.NewNotFoundError("Note not found")
	}

	canModerate, err := uc.enforcer.Enforce(p.Role, permission.ResourceNote, permission.ActionModerate)
	if err != nil {
		uc.logger.Errorw("failed to evaluate note policy", "role", p.Role, "error", err)
		return errors.NewInternalError("Failed to evaluate permissions")
	}
	if err := n.EnsureCanDelete(p.UserID, p.CompanyID, canModerate); err != nil {
		return err
	}

	if err := uc.notes.Delete(ctx, n.ID()); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete note", "note_id", n.ID(), "error", err)
		}
		return errors.WrapDependency(err)
	}

	uc.logger.Infow("note deleted", "note_id", n.ID(), "user_id", p.UserID)
	return nil
}
