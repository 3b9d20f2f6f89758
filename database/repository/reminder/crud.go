package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new reminder document.
func (r *MongoReminderRepo) Create(ctx context.Context, reminder *models.Reminder) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, reminder)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// Update replaces the stored document for an existing reminder.
func (r *MongoReminderRepo) Update(ctx context.Context, reminder *models.Reminder) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	reminder.UpdatedAt = time.Now()
	filter := bson.M{"id": reminder.ID}
	update := bson.M{"$set": reminder}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reminder with id %s: %w", reminder.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder with id %s not found", reminder.ID)
	}
	return nil
}

// SetFields applies a partial update to a reminder document.
func (r *MongoReminderRepo) SetFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"id": id}
	update := bson.M{"$set": fields}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reminder with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder with id %s not found", id)
	}
	return nil
}

// MarkNotified flips the notificationSent flag for a reminder.
func (r *MongoReminderRepo) MarkNotified(ctx context.Context, id string) error {
	return r.SetFields(ctx, id, bson.M{"notificationSent": true})
}

// Delete removes a reminder document by its ID.
func (r *MongoReminderRepo) Delete(ctx context.Context, profileID, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "profileId": profileID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete reminder with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("reminder with id %s not found", id)
	}
	return nil
}
