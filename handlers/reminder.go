package handlers

import (
	"net/http"

	"github.com/Nadeem-mohammad0021/assistant/middleware"
	reminderSvc "github.com/Nadeem-mohammad0021/assistant/services/reminder"
	"github.com/Nadeem-mohammad0021/assistant/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the reminder lifecycle over HTTP.
type ReminderHandler struct {
	Service reminderSvc.ReminderService
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(service reminderSvc.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: service}
}

// CreateReminderHandler handles POST /api/reminders.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}

	var req reminderSvc.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reminder payload", err.Error())
		return
	}

	rem, err := h.Service.Create(c.Request.Context(), profileID, req)
	if err != nil {
		logger.Error("Failed to create reminder", zap.String("profileId", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rem)
}

// ListRemindersHandler handles GET /api/reminders.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}

	reminders, err := h.Service.List(c.Request.Context(), profileID)
	if err != nil {
		logger.Error("Failed to list reminders", zap.String("profileId", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// UpdateReminderHandler handles PATCH /api/reminders/:id.
func (h *ReminderHandler) UpdateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}
	id := c.Param("id")

	var req reminderSvc.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reminder payload", err.Error())
		return
	}

	rem, err := h.Service.Update(c.Request.Context(), profileID, id, req)
	if err != nil {
		logger.Error("Failed to update reminder", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rem)
}

// CompleteReminderHandler handles POST /api/reminders/:id/complete.
func (h *ReminderHandler) CompleteReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}
	id := c.Param("id")

	rem, err := h.Service.Complete(c.Request.Context(), profileID, id)
	if err != nil {
		logger.Error("Failed to complete reminder", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rem)
}

// DeleteReminderHandler handles DELETE /api/reminders/:id.
func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID, ok := middleware.ProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing profile identity"})
		return
	}
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), profileID, id); err != nil {
		logger.Error("Failed to delete reminder", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
