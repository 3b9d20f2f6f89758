package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/config"
	notificationRepo "github.com/Nadeem-mohammad0021/assistant/database/repository/notification"
	profileRepo "github.com/Nadeem-mohammad0021/assistant/database/repository/profile"
	"github.com/Nadeem-mohammad0021/assistant/models"
	"github.com/Nadeem-mohammad0021/assistant/services/tasks"
	"github.com/Nadeem-mohammad0021/assistant/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitPushWorker runs the async push-delivery worker in background.
func InitPushWorker(profiles profileRepo.ProfileRepository, feed notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendPush, handlePushTask(profiles, feed))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[PushWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PushWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PushWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePushTask(profiles profileRepo.ProfileRepository, feed notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PushHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[PushHandler] ⏰ Delivering push for profile %s → %s", p.ProfileID, p.Title)

		// Record the event in the in-app feed first so it survives a
		// missed or suppressed OS-level popup.
		entry := &models.Notification{
			ID:        uuid.NewString(),
			ProfileID: p.ProfileID,
			Type:      "reminder",
			Title:     p.Title,
			Body:      p.Body,
			Data:      p.Data,
		}
		if err := feed.Create(ctx, entry); err != nil {
			log.Printf("[PushHandler] ⚠️ Failed to record feed entry: %v", err)
		}

		profile, err := profiles.GetByID(ctx, p.ProfileID)
		if err != nil {
			log.Printf("[PushHandler] ❌ Could not load profile %s: %v", p.ProfileID, err)
			return err
		}
		if profile.FCMToken == "" {
			// Device token was cleared between enqueue and delivery.
			return nil
		}

		msg := &messaging.Message{
			Token: profile.FCMToken,
			Notification: &messaging.Notification{
				Title: p.Title,
				Body:  p.Body,
			},
			Data: p.Data,
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			log.Printf("[PushHandler] ❌ Failed to send FCM message: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[PushWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
