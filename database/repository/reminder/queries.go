package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a reminder by its unique ID, scoped to its owner.
func (r *MongoReminderRepo) GetByID(ctx context.Context, profileID, id string) (*models.Reminder, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var reminder models.Reminder
	filter := bson.M{"id": id, "profileId": profileID}
	if err := r.coll.FindOne(ctx, filter).Decode(&reminder); err != nil {
		return nil, fmt.Errorf("failed to fetch reminder with id %s: %w", id, err)
	}
	return &reminder, nil
}

// ListByProfile retrieves all reminders owned by a profile, soonest due first.
func (r *MongoReminderRepo) ListByProfile(ctx context.Context, profileID string) ([]models.Reminder, error) {
	return r.list(ctx, bson.M{"profileId": profileID})
}

// ListActive retrieves reminders that are still candidates for
// notification delivery: not completed and not yet notified.
func (r *MongoReminderRepo) ListActive(ctx context.Context, profileID string) ([]models.Reminder, error) {
	return r.list(ctx, bson.M{
		"profileId":        profileID,
		"completed":        false,
		"notificationSent": false,
	})
}

func (r *MongoReminderRepo) list(ctx context.Context, filter bson.M) ([]models.Reminder, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dueAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}
	return reminders, nil
}
