package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/application/notification/usecases"
	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/id"
	"github.com/brandvault/brandvault/internal/shared/logger"
	"github.com/brandvault/brandvault/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        listNotificationsUseCase
	markReadUC    markNotificationAsReadUseCase
	markAllUC     markAllAsReadUseCase
	unreadCountUC getUnreadCountUseCase
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC listNotificationsUseCase,
	markReadUC markNotificationAsReadUseCase,
	markAllUC markAllAsReadUseCase,
	unreadCountUC getUnreadCountUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllUC:     markAllUC,
		unreadCountUC: unreadCountUC,
		logger:        logger,
	}
}

// List handles GET /notifications?unreadOnly=&limit=
func (h *NotificationHandler) List(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), p, usecases.ListNotificationsQuery{
		UnreadOnly: utils.ParseBoolQuery(c, "unreadOnly"),
		Limit:      utils.ParseLimit(c, "limit", constants.DefaultNotificationLimit, constants.MaxNotificationLimit),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAsRead handles PATCH /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	notificationID, err := utils.ParseSIDParam(c, "id", id.PrefixNotification, "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), p, notificationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.markAllUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", result)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	result, err := h.unreadCountUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
