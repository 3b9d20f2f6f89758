package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/config"
	"github.com/Nadeem-mohammad0021/assistant/database"
	"github.com/Nadeem-mohammad0021/assistant/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the local database with demo profiles and reminders so the
// scheduler has something to chew on during manual testing.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database("assistant")
	profileColl := db.Collection("profiles")
	reminderColl := db.Collection("reminders")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing demo data.
	if _, err := profileColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear profiles collection: %v", err)
	}
	if _, err := reminderColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear reminders collection: %v", err)
	}

	names := []string{"Ada Lovelace", "Grace Hopper", "Alan Turing", "Edsger Dijkstra"}
	now := time.Now()

	var profiles []interface{}
	var reminders []interface{}

	for i, name := range names {
		profileID := uuid.NewString()
		profiles = append(profiles, models.Profile{
			ID:          profileID,
			Email:       fmt.Sprintf("demo%d@assistant.local", i+1),
			DisplayName: name,
			Preferences: models.NotificationPreferences{
				NotificationsEnabled: true,
				EmailEnabled:         i%2 == 0,
				PushEnabled:          true,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})

		// A few reminders per profile: one due within the next couple
		// of minutes so a running scheduler fires quickly, the rest
		// spread over the coming week.
		dueSoon := now.Add(time.Duration(30+rand.Intn(90)) * time.Second)
		reminders = append(reminders, models.Reminder{
			ID:        uuid.NewString(),
			ProfileID: profileID,
			Title:     "Demo: due any moment",
			Type:      models.ReminderPersonal,
			DueAt:     dueSoon,
			CreatedAt: now,
			UpdatedAt: now,
		})

		for d := 1; d <= 3; d++ {
			reminders = append(reminders, models.Reminder{
				ID:          uuid.NewString(),
				ProfileID:   profileID,
				Title:       fmt.Sprintf("Demo task %d", d),
				Description: "Seeded reminder",
				Type:        models.ReminderProfessional,
				DueAt:       now.AddDate(0, 0, d),
				Recurring:   d == 1,
				RecurrenceRule: func() models.RecurrenceRule {
					if d == 1 {
						return models.RecurDaily
					}
					return ""
				}(),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	if _, err := profileColl.InsertMany(ctx, profiles); err != nil {
		log.Fatalf("Failed to seed profiles: %v", err)
	}
	if _, err := reminderColl.InsertMany(ctx, reminders); err != nil {
		log.Fatalf("Failed to seed reminders: %v", err)
	}

	log.Printf("Seeded %d profiles and %d reminders", len(profiles), len(reminders))
}
