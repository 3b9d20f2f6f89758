package notificationRepo

import (
	"context"

	"github.com/Nadeem-mohammad0021/assistant/models"
)

// NotificationRepository defines methods for in-app feed data access.
type NotificationRepository interface {
	// Create inserts a new feed record.
	Create(ctx context.Context, notification *models.Notification) error
	// ListByProfile retrieves a profile's feed, newest first.
	ListByProfile(ctx context.Context, profileID string, limit int64) ([]models.Notification, error)
	// MarkRead flags a feed record as read.
	MarkRead(ctx context.Context, profileID, id string) error
}
