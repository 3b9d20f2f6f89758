package handlers

import (
	"net/http"
	"strconv"

	notificationRepo "github.com/Nadeem-mohammad0021/assistant/database/repository/notification"
	"github.com/Nadeem-mohammad0021/assistant/middleware"
	"github.com/Nadeem-mohammad0021/assistant/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}

	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	feed, err := h.Repo.ListByProfile(c.Request.Context(), profileID, limit)
	if err != nil {
		logger.Error("Failed to list notifications", zap.String("profileId", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, feed)
}

// MarkNotificationReadHandler handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}
	id := c.Param("id")

	if err := h.Repo.MarkRead(c.Request.Context(), profileID, id); err != nil {
		logger.Error("Failed to mark notification read", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
