package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Reminder endpoints
	CreateReminderHandler   gin.HandlerFunc
	ListRemindersHandler    gin.HandlerFunc
	UpdateReminderHandler   gin.HandlerFunc
	CompleteReminderHandler gin.HandlerFunc
	DeleteReminderHandler   gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler        gin.HandlerFunc
	UpdatePreferencesHandler gin.HandlerFunc
	UpdateFCMTokenHandler    gin.HandlerFunc
	PresenceHeartbeatHandler gin.HandlerFunc

	// Notification feed endpoints
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
}
