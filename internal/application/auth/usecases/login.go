package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/domain/user"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	users  user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logger.Interface
}

func NewLoginUseCase(users user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Execute answers every credential mismatch with the same error so callers
// cannot discover which emails exist.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.SessionResult, error) {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to load user by email", "error", err)
		return nil, errors.WrapDependency(err)
	}
	if u == nil {
		uc.logger.Warnw("login rejected: unknown email", "email", utils.MaskEmail(email))
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login rejected: password mismatch", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "company_id", u.CompanyID())
	return issueSession(uc.tokens, u, uc.logger)
}
