package models

import "time"

// ReminderType distinguishes personal and professional reminders.
type ReminderType string

const (
	ReminderPersonal     ReminderType = "personal"
	ReminderProfessional ReminderType = "professional"
)

// RecurrenceRule describes how a recurring reminder repeats.
type RecurrenceRule string

const (
	RecurDaily   RecurrenceRule = "daily"
	RecurWeekly  RecurrenceRule = "weekly"
	RecurMonthly RecurrenceRule = "monthly"
)

// Reminder represents a scheduled reminder owned by a profile.
type Reminder struct {
	ID               string         `bson:"id" json:"id"`
	ProfileID        string         `bson:"profileId" json:"profileId"`
	Title            string         `bson:"title" json:"title"`
	Description      string         `bson:"description,omitempty" json:"description,omitempty"`
	Type             ReminderType   `bson:"type" json:"type"`
	DueAt            time.Time      `bson:"dueAt" json:"dueAt"`
	Completed        bool           `bson:"completed" json:"completed"`
	CompletedAt      *time.Time     `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Recurring        bool           `bson:"recurring" json:"recurring"`
	RecurrenceRule   RecurrenceRule `bson:"recurrenceRule,omitempty" json:"recurrenceRule,omitempty"`
	NotificationSent bool           `bson:"notificationSent" json:"notificationSent"`
	CreatedAt        time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ValidRecurrence reports whether rule is one of the supported rules.
func ValidRecurrence(rule RecurrenceRule) bool {
	switch rule {
	case RecurDaily, RecurWeekly, RecurMonthly:
		return true
	}
	return false
}
