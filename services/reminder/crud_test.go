package reminder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"go.mongodb.org/mongo-driver/bson"
)

type memReminderRepo struct {
	store map[string]*models.Reminder
}

func newMemReminderRepo() *memReminderRepo {
	return &memReminderRepo{store: make(map[string]*models.Reminder)}
}

func (m *memReminderRepo) Create(ctx context.Context, r *models.Reminder) error {
	cp := *r
	m.store[r.ID] = &cp
	return nil
}

func (m *memReminderRepo) GetByID(ctx context.Context, profileID, id string) (*models.Reminder, error) {
	r, ok := m.store[id]
	if !ok || r.ProfileID != profileID {
		return nil, fmt.Errorf("reminder with id %s not found", id)
	}
	cp := *r
	return &cp, nil
}

func (m *memReminderRepo) ListByProfile(ctx context.Context, profileID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.store {
		if r.ProfileID == profileID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReminderRepo) ListActive(ctx context.Context, profileID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range m.store {
		if r.ProfileID == profileID && !r.Completed && !r.NotificationSent {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReminderRepo) Update(ctx context.Context, r *models.Reminder) error {
	if _, ok := m.store[r.ID]; !ok {
		return fmt.Errorf("reminder with id %s not found", r.ID)
	}
	cp := *r
	m.store[r.ID] = &cp
	return nil
}

func (m *memReminderRepo) SetFields(ctx context.Context, id string, fields bson.M) error {
	r, ok := m.store[id]
	if !ok {
		return fmt.Errorf("reminder with id %s not found", id)
	}
	if v, ok := fields["notificationSent"].(bool); ok {
		r.NotificationSent = v
	}
	return nil
}

func (m *memReminderRepo) MarkNotified(ctx context.Context, id string) error {
	return m.SetFields(ctx, id, bson.M{"notificationSent": true})
}

func (m *memReminderRepo) Delete(ctx context.Context, profileID, id string) error {
	r, ok := m.store[id]
	if !ok || r.ProfileID != profileID {
		return fmt.Errorf("reminder with id %s not found", id)
	}
	delete(m.store, id)
	return nil
}

func TestCreateDefaultsToPersonal(t *testing.T) {
	svc := &DefaultReminderService{Repo: newMemReminderRepo()}

	rem, err := svc.Create(context.Background(), "p1", CreateReminderRequest{
		Title: "Water plants",
		DueAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rem.Type != models.ReminderPersonal {
		t.Errorf("expected personal type default, got %q", rem.Type)
	}
	if rem.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestCreateRejectsInvalidRecurrence(t *testing.T) {
	svc := &DefaultReminderService{Repo: newMemReminderRepo()}

	_, err := svc.Create(context.Background(), "p1", CreateReminderRequest{
		Title:          "Standup",
		DueAt:          time.Now(),
		Recurring:      true,
		RecurrenceRule: "fortnightly",
	})
	if err == nil {
		t.Fatal("expected error for unsupported recurrence rule")
	}
}

func TestUpdateDueAtResetsLifecycleFlags(t *testing.T) {
	repo := newMemReminderRepo()
	svc := &DefaultReminderService{Repo: repo}

	completedAt := time.Now()
	repo.store["r1"] = &models.Reminder{
		ID:               "r1",
		ProfileID:        "p1",
		Title:            "Dentist",
		DueAt:            time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Completed:        true,
		CompletedAt:      &completedAt,
		NotificationSent: true,
	}

	newDue := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	rem, err := svc.Update(context.Background(), "p1", "r1", UpdateReminderRequest{DueAt: &newDue})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if rem.NotificationSent || rem.Completed || rem.CompletedAt != nil {
		t.Errorf("due-time edit must reset lifecycle flags: %+v", rem)
	}
	if !rem.DueAt.Equal(newDue) {
		t.Errorf("dueAt not updated: got %v", rem.DueAt)
	}
}

func TestUpdateWithoutDueAtKeepsFlags(t *testing.T) {
	repo := newMemReminderRepo()
	svc := &DefaultReminderService{Repo: repo}

	repo.store["r1"] = &models.Reminder{
		ID:               "r1",
		ProfileID:        "p1",
		Title:            "Dentist",
		DueAt:            time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		NotificationSent: true,
	}

	title := "Dentist appointment"
	rem, err := svc.Update(context.Background(), "p1", "r1", UpdateReminderRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !rem.NotificationSent {
		t.Error("title-only edit must not reset the notification flag")
	}
}

func TestCompleteRecurringRollsForward(t *testing.T) {
	repo := newMemReminderRepo()
	svc := &DefaultReminderService{Repo: repo}

	dueAt := time.Now().Add(-time.Hour)
	repo.store["r1"] = &models.Reminder{
		ID:               "r1",
		ProfileID:        "p1",
		Title:            "Standup",
		DueAt:            dueAt,
		Recurring:        true,
		RecurrenceRule:   models.RecurDaily,
		NotificationSent: true,
	}

	rem, err := svc.Complete(context.Background(), "p1", "r1")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if rem.Completed {
		t.Error("recurring reminder must roll forward, not complete")
	}
	if rem.NotificationSent {
		t.Error("roll-forward must reset the notification flag")
	}
	if !rem.DueAt.After(time.Now()) {
		t.Errorf("next occurrence must be in the future, got %v", rem.DueAt)
	}
}

func TestCompleteOneShot(t *testing.T) {
	repo := newMemReminderRepo()
	svc := &DefaultReminderService{Repo: repo}

	repo.store["r1"] = &models.Reminder{
		ID:        "r1",
		ProfileID: "p1",
		Title:     "Taxes",
		DueAt:     time.Now(),
	}

	rem, err := svc.Complete(context.Background(), "p1", "r1")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !rem.Completed || rem.CompletedAt == nil {
		t.Errorf("one-shot completion must set completed and completedAt: %+v", rem)
	}
}

func TestNextOccurrence(t *testing.T) {
	base := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		rule models.RecurrenceRule
		due  time.Time
		now  time.Time
		want time.Time
	}{
		{
			name: "daily single step",
			rule: models.RecurDaily,
			due:  base,
			now:  base,
			want: base.AddDate(0, 0, 1),
		},
		{
			name: "weekly single step",
			rule: models.RecurWeekly,
			due:  base,
			now:  base,
			want: base.AddDate(0, 0, 7),
		},
		{
			name: "daily skips stale occurrences",
			rule: models.RecurDaily,
			due:  base,
			now:  base.AddDate(0, 0, 5),
			want: base.AddDate(0, 0, 6),
		},
		{
			name: "monthly from end of january",
			rule: models.RecurMonthly,
			due:  base,
			now:  base,
			want: base.AddDate(0, 1, 0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextOccurrence(tc.rule, tc.due, tc.now)
			if !got.Equal(tc.want) {
				t.Errorf("NextOccurrence(%s, %v, %v) = %v, want %v", tc.rule, tc.due, tc.now, got, tc.want)
			}
		})
	}
}
