package scheduler

import (
	"context"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/models"
)

// ProfileSource supplies the profiles considered by an evaluation pass.
type ProfileSource interface {
	ListNotifiable(ctx context.Context) ([]models.Profile, error)
}

// ReminderSource supplies candidate reminders and records delivery.
type ReminderSource interface {
	ListActive(ctx context.Context, profileID string) ([]models.Reminder, error)
	MarkNotified(ctx context.Context, id string) error
}

// PushChannel delivers a best-effort push notification. Errors are
// logged by the scheduler and never block delivery on other channels.
type PushChannel interface {
	Notify(ctx context.Context, profile *models.Profile, title, body string, data map[string]string) error
}

// EmailChannel delivers a reminder email synchronously. A nil return
// is the delivery confirmation that gates the de-dup flag.
type EmailChannel interface {
	Notify(ctx context.Context, address, displayName, title, description string, dueAt time.Time) error
}
