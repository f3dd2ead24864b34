package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/notification/dto"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.MarkAllReadResponse, error) {
	updated, err := uc.repo.MarkAllRead(ctx, p.UserID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", p.UserID, "error", err)
		return nil, errors.WrapDependency(err)
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}
