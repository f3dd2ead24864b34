package handlers

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/auth/dto"
	"github.com/brandvault/brandvault/internal/application/auth/usecases"
	"github.com/brandvault/brandvault/internal/shared/authorization"
)

// Use case interfaces for AuthHandler - enables unit testing with fakes.

type signupUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*dto.SessionResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.SessionResult, error)
}

type currentUserUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.MeResponse, error)
}
