package usecases

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/notification/dto"
	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/authorization"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/errors"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type ListNotificationsQuery struct {
	UnreadOnly bool
	Limit      int
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, p *authorization.Principal, query ListNotificationsQuery) (*dto.ListNotificationsResponse, error) {
	limit := utils.ClampLimit(query.Limit, constants.DefaultNotificationLimit, constants.MaxNotificationLimit)

	items, err := uc.repo.ListByRecipient(ctx, p.UserID, query.UnreadOnly, limit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", p.UserID, "error", err)
		return nil, errors.WrapDependency(err)
	}

	unread, err := uc.repo.CountUnread(ctx, p.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", p.UserID, "error", err)
		return nil, errors.WrapDependency(err)
	}

	responses := dto.ToNotificationResponses(items)
	if responses == nil {
		responses = []*dto.NotificationResponse{}
	}
	return &dto.ListNotificationsResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}
