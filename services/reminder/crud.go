package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"github.com/google/uuid"
)

// Create inserts a new reminder for the given profile.
func (s *DefaultReminderService) Create(ctx context.Context, profileID string, req CreateReminderRequest) (*models.Reminder, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("reminder title is required")
	}
	if req.Type == "" {
		req.Type = models.ReminderPersonal
	}
	if req.Recurring && !models.ValidRecurrence(req.RecurrenceRule) {
		return nil, fmt.Errorf("invalid recurrence rule %q", req.RecurrenceRule)
	}

	rem := &models.Reminder{
		ID:             uuid.NewString(),
		ProfileID:      profileID,
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		DueAt:          req.DueAt,
		Recurring:      req.Recurring,
		RecurrenceRule: req.RecurrenceRule,
	}
	if err := s.Repo.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// List returns all reminders owned by the profile.
func (s *DefaultReminderService) List(ctx context.Context, profileID string) ([]models.Reminder, error) {
	return s.Repo.ListByProfile(ctx, profileID)
}

// Update applies a partial edit. Changing the due time resets the
// completed and notificationSent flags so the reminder becomes a fresh
// notification candidate for its new due window.
func (s *DefaultReminderService) Update(ctx context.Context, profileID, id string, req UpdateReminderRequest) (*models.Reminder, error) {
	rem, err := s.Repo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		rem.Title = *req.Title
	}
	if req.Description != nil {
		rem.Description = *req.Description
	}
	if req.Type != nil {
		rem.Type = *req.Type
	}
	if req.Recurring != nil {
		rem.Recurring = *req.Recurring
	}
	if req.RecurrenceRule != nil {
		rem.RecurrenceRule = *req.RecurrenceRule
	}
	if rem.Recurring && !models.ValidRecurrence(rem.RecurrenceRule) {
		return nil, fmt.Errorf("invalid recurrence rule %q", rem.RecurrenceRule)
	}
	if req.DueAt != nil && !req.DueAt.Equal(rem.DueAt) {
		rem.DueAt = *req.DueAt
		rem.Completed = false
		rem.CompletedAt = nil
		rem.NotificationSent = false
	}

	if err := s.Repo.Update(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// Complete marks a reminder done. A recurring reminder rolls forward
// to its next occurrence instead, with both lifecycle flags reset.
func (s *DefaultReminderService) Complete(ctx context.Context, profileID, id string) (*models.Reminder, error) {
	rem, err := s.Repo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if rem.Recurring && models.ValidRecurrence(rem.RecurrenceRule) {
		rem.DueAt = NextOccurrence(rem.RecurrenceRule, rem.DueAt, now)
		rem.Completed = false
		rem.CompletedAt = nil
		rem.NotificationSent = false
	} else {
		rem.Completed = true
		rem.CompletedAt = &now
	}

	if err := s.Repo.Update(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// Delete removes a reminder.
func (s *DefaultReminderService) Delete(ctx context.Context, profileID, id string) error {
	return s.Repo.Delete(ctx, profileID, id)
}

// NextOccurrence advances dueAt by the recurrence rule, skipping any
// occurrences that already passed, so a long-ignored recurring
// reminder does not immediately re-fire for stale occurrences.
func NextOccurrence(rule models.RecurrenceRule, dueAt, now time.Time) time.Time {
	next := advance(rule, dueAt)
	if next.Equal(dueAt) {
		// Unknown rule: leave the due time alone.
		return dueAt
	}
	for !next.After(now) {
		next = advance(rule, next)
	}
	return next
}

func advance(rule models.RecurrenceRule, t time.Time) time.Time {
	switch rule {
	case models.RecurDaily:
		return t.AddDate(0, 0, 1)
	case models.RecurWeekly:
		return t.AddDate(0, 0, 7)
	case models.RecurMonthly:
		return t.AddDate(0, 1, 0)
	}
	return t
}
