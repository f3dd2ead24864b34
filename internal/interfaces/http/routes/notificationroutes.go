package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/interfaces/http/handlers"
	"github.com/brandvault/brandvault/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupNotificationRoutes configures the per-user inbox routes.
func SetupNotificationRoutes(api *gin.RouterGroup, cfg *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", cfg.NotificationHandler.List)
		notifications.GET("/unread-count", cfg.NotificationHandler.UnreadCount)
		notifications.PATCH("/read-all", cfg.NotificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read", cfg.NotificationHandler.MarkAsRead)
	}
}
