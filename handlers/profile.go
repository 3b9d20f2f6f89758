package handlers

import (
	"net/http"

	profileRepo "github.com/Nadeem-mohammad0021/assistant/database/repository/profile"
	"github.com/Nadeem-mohammad0021/assistant/middleware"
	"github.com/Nadeem-mohammad0021/assistant/models"
	"github.com/Nadeem-mohammad0021/assistant/services/notification"
	"github.com/Nadeem-mohammad0021/assistant/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ProfileHandler exposes profile preferences, device token and
// presence endpoints.
type ProfileHandler struct {
	Repo     profileRepo.ProfileRepository
	Presence *notification.PresenceTracker
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(repo profileRepo.ProfileRepository, presence *notification.PresenceTracker) *ProfileHandler {
	return &ProfileHandler{Repo: repo, Presence: presence}
}

// GetProfileHandler handles GET /api/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}

	profile, err := h.Repo.GetByID(c.Request.Context(), profileID)
	if err != nil {
		logger.Error("Profile not found", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdatePreferencesHandler handles PATCH /api/profile/preferences.
func (h *ProfileHandler) UpdatePreferencesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}

	var prefs models.NotificationPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid preferences payload", err.Error())
		return
	}

	if err := h.Repo.SetFields(c.Request.Context(), profileID, bson.M{"preferences": prefs}); err != nil {
		logger.Error("Failed to update preferences", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated"})
}

// UpdateFCMTokenHandler handles PUT /api/profile/fcm-token.
func (h *ProfileHandler) UpdateFCMTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid token payload", err.Error())
		return
	}

	if err := h.Repo.SetFields(c.Request.Context(), profileID, bson.M{"fcmToken": req.Token}); err != nil {
		logger.Error("Failed to update FCM token", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device token updated"})
}

// PresenceHeartbeatHandler handles POST /api/profile/presence. The
// client sends a heartbeat while the workspace tab is focused; the
// push channel uses it to suppress popups the user can already see.
func (h *ProfileHandler) PresenceHeartbeatHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}

	if err := h.Presence.Heartbeat(c.Request.Context(), profileID); err != nil {
		logger.Warn("Failed to record presence", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Presence recorded"})
}
