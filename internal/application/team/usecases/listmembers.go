package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/team/dto"
	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type ListMembersUseCase struct {
	users    user.Repository
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewListMembersUseCase(users user.Repository, enforcer permission.Enforcer, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		users:    users,
		enforcer: enforcer,
		logger:   logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.TeamResponse, error) {
	if err := ensureAllowed(uc.enforcer, p, permission.ActionRead, uc.logger); err != nil {
		return nil, err
	}

	members, err := uc.users.ListByCompanyID(ctx, p.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to list team members", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	return dto.ToTeamResponse(members), nil
}

func ensureAllowed(enforcer permission.Enforcer, p *authorization.Principal, action permission.Action, log logger.Interface) error {
	allowed, err := enforcer.Enforce(p.Role, permission.ResourceTeam, action)
	if err != nil {
		log.Errorw("failed to evaluate team policy", "role", p.Role, "action", action, "error", err)
		return errors.NewInternalError("Failed to evaluate permissions")
	}
	if !allowed {
		return errors.NewForbiddenError("Only master users can manage team members")
	}
	return nil
}
