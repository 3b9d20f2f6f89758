package reminderRepo

import (
	"context"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReminderRepository defines methods for reminder data access.
type ReminderRepository interface {
	// Create inserts a new reminder record.
	Create(ctx context.Context, reminder *models.Reminder) error
	// GetByID retrieves a reminder by its unique ID, scoped to a profile.
	GetByID(ctx context.Context, profileID, id string) (*models.Reminder, error)
	// ListByProfile retrieves all reminders owned by a profile.
	ListByProfile(ctx context.Context, profileID string) ([]models.Reminder, error)
	// ListActive retrieves reminders that are neither completed nor
	// already notified, in stable creation order.
	ListActive(ctx context.Context, profileID string) ([]models.Reminder, error)
	// Update replaces the mutable fields of an existing reminder.
	Update(ctx context.Context, reminder *models.Reminder) error
	// SetFields applies a partial $set update to a reminder.
	SetFields(ctx context.Context, id string, fields bson.M) error
	// MarkNotified sets the notificationSent flag on a reminder.
	MarkNotified(ctx context.Context, id string) error
	// Delete removes a reminder record by its ID, scoped to a profile.
	Delete(ctx context.Context, profileID, id string) error
}
