package reminder

import (
	"context"
	"time"

	reminderRepo "github.com/Nadeem-mohammad0021/assistant/database/repository/reminder"
	"github.com/Nadeem-mohammad0021/assistant/models"
)

// ReminderService defines the reminder lifecycle operations exposed to
// the HTTP surface.
type ReminderService interface {
	Create(ctx context.Context, profileID string, req CreateReminderRequest) (*models.Reminder, error)
	List(ctx context.Context, profileID string) ([]models.Reminder, error)
	Update(ctx context.Context, profileID, id string, req UpdateReminderRequest) (*models.Reminder, error)
	Complete(ctx context.Context, profileID, id string) (*models.Reminder, error)
	Delete(ctx context.Context, profileID, id string) error
}

// CreateReminderRequest carries the fields of a new reminder.
type CreateReminderRequest struct {
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description"`
	Type           models.ReminderType   `json:"type"`
	DueAt          time.Time             `json:"dueAt" binding:"required"`
	Recurring      bool                  `json:"recurring"`
	RecurrenceRule models.RecurrenceRule `json:"recurrenceRule"`
}

// UpdateReminderRequest carries a partial reminder update. Nil fields
// are left untouched.
type UpdateReminderRequest struct {
	Title          *string                `json:"title"`
	Description    *string                `json:"description"`
	Type           *models.ReminderType   `json:"type"`
	DueAt          *time.Time             `json:"dueAt"`
	Recurring      *bool                  `json:"recurring"`
	RecurrenceRule *models.RecurrenceRule `json:"recurrenceRule"`
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo reminderRepo.ReminderRepository
}
