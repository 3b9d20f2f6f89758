package models

import (
	"strings"
	"time"
)

// NotificationPreferences holds the per-profile delivery toggles.
type NotificationPreferences struct {
	NotificationsEnabled bool `bson:"notificationsEnabled" json:"notificationsEnabled"`
	EmailEnabled         bool `bson:"emailEnabled" json:"emailEnabled"`
	PushEnabled          bool `bson:"pushEnabled" json:"pushEnabled"`
}

// Profile represents a workspace user as seen by the reminder subsystem.
type Profile struct {
	ID          string                  `bson:"id" json:"id"`
	Email       string                  `bson:"email" json:"email"`
	DisplayName string                  `bson:"displayName" json:"displayName"`
	FCMToken    string                  `bson:"fcmToken,omitempty" json:"-"`
	Preferences NotificationPreferences `bson:"preferences" json:"preferences"`
	CreatedAt   time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// FirstName returns the first token of the display name, or "there"
// when the profile has no usable name.
func (p *Profile) FirstName() string {
	fields := strings.Fields(p.DisplayName)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}
