package dto

import (
	"time"

	"github.com/brandvault/brandvault/internal/domain/notification"
	"github.com/brandvault/brandvault/internal/shared/mapper"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListNotificationsResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func ToNotificationResponse(n *notification.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:        n.ID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Content:   n.Content(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationResponses(items []*notification.Notification) []*NotificationResponse {
	return mapper.MapSlicePtrSkipNil(items, ToNotificationResponse)
}
