package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/config"
	"github.com/Nadeem-mohammad0021/assistant/cron"
	"github.com/Nadeem-mohammad0021/assistant/database"
	notificationRepoPkg "github.com/Nadeem-mohammad0021/assistant/database/repository/notification"
	profileRepoPkg "github.com/Nadeem-mohammad0021/assistant/database/repository/profile"
	reminderRepoPkg "github.com/Nadeem-mohammad0021/assistant/database/repository/reminder"
	"github.com/Nadeem-mohammad0021/assistant/handlers"
	"github.com/Nadeem-mohammad0021/assistant/middleware"
	"github.com/Nadeem-mohammad0021/assistant/routes"
	"github.com/Nadeem-mohammad0021/assistant/services/notification"
	reminderSvc "github.com/Nadeem-mohammad0021/assistant/services/reminder"
	"github.com/Nadeem-mohammad0021/assistant/services/scheduler"
	"github.com/Nadeem-mohammad0021/assistant/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// notification channels.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	presence := notification.NewPresenceTracker(utils.GetPresenceClient())
	pushChannel := notification.NewAsyncPushChannel(queueClient, presence)
	emailChannel := notification.NewSMTPEmailChannel()

	// services.
	reminderService := &reminderSvc.DefaultReminderService{
		Repo: reminderRepo,
	}

	// The reminder scheduler owns the notification loop for the whole
	// process lifetime; it is stopped explicitly during shutdown.
	pollInterval := time.Duration(config.AppConfig.ReminderPollSeconds) * time.Second
	reminderScheduler := scheduler.New(
		profileRepo,
		reminderRepo,
		pushChannel,
		emailChannel,
		pollInterval,
		logger,
	)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()
	reminderScheduler.Start(rootCtx)

	// Async push-delivery worker.
	cron.InitPushWorker(profileRepo, notificationRepo)

	// Periodic dependency health snapshots for /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetPresenceClient()},
		database.MongoClient,
	)

	// handlers.
	reminderHandler := handlers.NewReminderHandler(reminderService)
	profileHandler := handlers.NewProfileHandler(profileRepo, presence)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateReminderHandler:   reminderHandler.CreateReminderHandler,
		ListRemindersHandler:    reminderHandler.ListRemindersHandler,
		UpdateReminderHandler:   reminderHandler.UpdateReminderHandler,
		CompleteReminderHandler: reminderHandler.CompleteReminderHandler,
		DeleteReminderHandler:   reminderHandler.DeleteReminderHandler,

		GetProfileHandler:        profileHandler.GetProfileHandler,
		UpdatePreferencesHandler: profileHandler.UpdatePreferencesHandler,
		UpdateFCMTokenHandler:    profileHandler.UpdateFCMTokenHandler,
		PresenceHeartbeatHandler: profileHandler.PresenceHeartbeatHandler,

		ListNotificationsHandler:    notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler: notificationHandler.MarkNotificationReadHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	reminderScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
