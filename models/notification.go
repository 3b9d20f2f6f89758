package models

import "time"

// Notification is an entry in a profile's in-app notification feed.
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	ProfileID string            `bson:"profileId" json:"profileId"`
	Type      string            `bson:"type" json:"type"`
	Title     string            `bson:"title" json:"title"`
	Body      string            `bson:"body" json:"body"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}
