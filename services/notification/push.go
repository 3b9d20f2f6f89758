package notification

import (
	"context"
	"fmt"

	"github.com/Nadeem-mohammad0021/assistant/models"
	"github.com/Nadeem-mohammad0021/assistant/services/tasks"

	"github.com/hibiken/asynq"
)

// AsyncPushChannel is the push delivery channel. It enqueues a task
// for the async worker rather than talking to FCM inline; the caller
// treats the whole channel as fire-and-forget.
type AsyncPushChannel struct {
	Queue    *asynq.Client
	Presence *PresenceTracker
}

// NewAsyncPushChannel creates the queued push channel.
func NewAsyncPushChannel(queue *asynq.Client, presence *PresenceTracker) *AsyncPushChannel {
	return &AsyncPushChannel{Queue: queue, Presence: presence}
}

// Notify queues a push for the given profile. It silently degrades to
// a no-op when the profile has no registered device token, or when the
// profile is currently active in-app (the reminder is already visible
// there; interrupting an engaged user with a popup helps no one).
func (c *AsyncPushChannel) Notify(ctx context.Context, profile *models.Profile, title, body string, data map[string]string) error {
	if profile.FCMToken == "" {
		return nil
	}
	if c.Presence != nil {
		active, err := c.Presence.IsActive(ctx, profile.ID)
		if err == nil && active {
			return nil
		}
	}

	payload := models.PushPayload{
		ProfileID: profile.ID,
		Title:     title,
		Body:      body,
		Data:      data,
	}
	if data != nil {
		payload.ReminderID = data["reminderId"]
	}

	task, opts, err := tasks.NewPushTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build push task: %w", err)
	}
	if _, err := c.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue push for profile %s: %w", profile.ID, err)
	}
	return nil
}
