package routes

import (
	"net/http"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/handlers"
	"github.com/Nadeem-mohammad0021/assistant/middleware"
	"github.com/Nadeem-mohammad0021/assistant/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReminderRoutes registers reminder lifecycle endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", hb.CreateReminderHandler)
		api.GET("", hb.ListRemindersHandler)
		api.PATCH("/:id", hb.UpdateReminderHandler)
		api.POST("/:id/complete", hb.CompleteReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterProfileRoutes registers profile preference and presence endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.GetProfileHandler)
		api.PATCH("/preferences", hb.UpdatePreferencesHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.POST("/presence", hb.PresenceHeartbeatHandler)
	}
}

// RegisterNotificationRoutes registers the in-app feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.ListNotificationsHandler)
		api.POST("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterReminderRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
