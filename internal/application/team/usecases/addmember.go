package usecases

import (
	"context"

	authdto "github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/domain/permission"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

const minPasswordLength = 8

type AddMemberCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AddMemberUseCase creates a USER in the caller's company.
type AddMemberUseCase struct {
	users    user.Repository
	hasher   PasswordHasher
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewAddMemberUseCase(
	users user.Repository,
	hasher PasswordHasher,
	enforcer permission.Enforcer,
	logger logger.Interface,
) *AddMemberUseCase {
	return &AddMemberUseCase{
		users:    users,
		hasher:   hasher,
		enforcer: enforcer,
		logger:   logger,
	}
}

func (uc *AddMemberUseCase) Execute(ctx context.Context, p *authorization.Principal, cmd AddMemberCommand) (*authdto.UserResponse, error) {
	if err := ensureAllowed(uc.enforcer, p, permission.ActionManage, uc.logger); err != nil {
		return nil, err
	}

	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("Invalid email address")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("Password must be at least 8 characters")
	}

	exists, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.WrapDependency(err)
	}
	if exists {
		return nil, errors.NewConflictError("Email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to process password")
	}

	member, err := user.NewUser(p.CompanyID, email, hash, cmd.FirstName, cmd.LastName, user.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.users.Create(ctx, member); err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("Email already registered")
		}
		uc.logger.Errorw("failed to create team member", "company_id", p.CompanyID, "error", err)
		return nil, errors.WrapDependency(err)
	}

	uc.logger.Infow("team member added", "company_id", p.CompanyID, "user_id", member.ID(), "added_by", p.UserID)
	return authdto.ToUserResponse(member), nil
}
