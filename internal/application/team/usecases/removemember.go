package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type RemoveMemberUseCase struct {
	users    user.Repository
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewRemoveMemberUseCase(users user.Repository, enforcer permission.Enforcer, logger logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		users:    users,
		enforcer: enforcer,
		logger:   logger,
	}
}

// Execute removes a USER of the caller's company. The MASTER account and the
// caller itself can never be removed.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, p *authorization.Principal, userID string) error {
	if err := ensureAllowed(uc.enforcer, p, permission.ActionManage, uc.logger); err != nil {
		return err
	}

	target, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load team member", "user_id", userID, "error", err)
		return errors.WrapDependency(err)
	}
	if target == nil {
		return errors.NewNotFoundError("User not found")
	}

	if err := user.EnsureCanRemove(p.UserID, p.CompanyID, user.Role(p.Role), target); err != nil {
		return err
	}

	if err := uc.users.Delete(ctx, target.ID()); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete team member", "user_id", target.ID(), "error", err)
		}
		return errors.WrapDependency(err)
	}

	uc.logger.Infow("team member removed", "company_id", p.CompanyID, "user_id", target.ID(), "removed_by", p.UserID)
	return nil
}
