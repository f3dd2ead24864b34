package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/notification/dto"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(repo notification.Repository, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{repo: repo, logger: logger}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.UnreadCountResponse, error) {
	count, err := uc.repo.CountUnread(ctx, p.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", p.UserID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
