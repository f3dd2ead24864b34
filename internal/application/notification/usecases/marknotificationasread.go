package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{repo: repo, logger: logger}
}

// Execute is a no-op for notifications that are missing or belong to another user.
func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, p *authorization.Principal, notificationID string) error {
	if err := uc.repo.MarkRead(ctx, notificationID, p.UserID); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "id", notificationID, "user_id", p.UserID, "error", err)
		return errors.WrapDependency(err)
	}
	return nil
}
