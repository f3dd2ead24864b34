package handlers

import (
	"context"

	"github.com/brandvault/brandvault/internal/application/notification/dto"
	"github.com/brandvault/brandvault/internal/application/notification/usecases"
	"github.com/brandvault/brandvault/internal/shared/authorization"
)

// Use case interfaces for NotificationHandler - enables unit testing with fakes.

type listNotificationsUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, query usecases.ListNotificationsQuery) (*dto.ListNotificationsResponse, error)
}

type markNotificationAsReadUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal, notificationID string) error
}

type markAllAsReadUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.MarkAllReadResponse, error)
}

type getUnreadCountUseCase interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.UnreadCountResponse, error)
}
