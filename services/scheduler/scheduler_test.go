package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/models"
)

type fakeProfiles struct {
	profiles []models.Profile
	err      error
}

func (f *fakeProfiles) ListNotifiable(ctx context.Context) ([]models.Profile, error) {
	return f.profiles, f.err
}

// fakeReminders returns its list verbatim, without the completed /
// notificationSent prefilter the production repository applies, so the
// scheduler's own guards get exercised.
type fakeReminders struct {
	reminders map[string][]models.Reminder
	listCalls map[string]int
	marked    []string
	listErr   error
	markErr   error
}

func newFakeReminders() *fakeReminders {
	return &fakeReminders{
		reminders: make(map[string][]models.Reminder),
		listCalls: make(map[string]int),
	}
}

func (f *fakeReminders) ListActive(ctx context.Context, profileID string) ([]models.Reminder, error) {
	f.listCalls[profileID]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.reminders[profileID], nil
}

func (f *fakeReminders) MarkNotified(ctx context.Context, id string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	for profileID, list := range f.reminders {
		for i := range list {
			if list[i].ID == id {
				f.reminders[profileID][i].NotificationSent = true
			}
		}
	}
	return nil
}

type pushCall struct {
	profileID, title, body string
}

type fakePush struct {
	calls []pushCall
	err   error
}

func (f *fakePush) Notify(ctx context.Context, profile *models.Profile, title, body string, data map[string]string) error {
	f.calls = append(f.calls, pushCall{profile.ID, title, body})
	return f.err
}

type emailCall struct {
	address, displayName, title, description string
	dueAt                                    time.Time
}

type fakeEmail struct {
	calls []emailCall
	err   error
}

func (f *fakeEmail) Notify(ctx context.Context, address, displayName, title, description string, dueAt time.Time) error {
	f.calls = append(f.calls, emailCall{address, displayName, title, description, dueAt})
	return f.err
}

func testProfile(prefs models.NotificationPreferences) models.Profile {
	return models.Profile{
		ID:          "p1",
		Email:       "ada@example.com",
		DisplayName: "Ada Lovelace",
		FCMToken:    "token-1",
		Preferences: prefs,
	}
}

func allEnabled() models.NotificationPreferences {
	return models.NotificationPreferences{
		NotificationsEnabled: true,
		EmailEnabled:         true,
		PushEnabled:          true,
	}
}

func newTestScheduler(profiles *fakeProfiles, reminders ReminderSource, push *fakePush, email *fakeEmail, now time.Time) *Scheduler {
	s := New(profiles, reminders, push, email, time.Hour, nil)
	s.now = func() time.Time { return now }
	return s
}

func TestPassDeliversDueReminderByEmail(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	profiles := &fakeProfiles{profiles: []models.Profile{testProfile(allEnabled())}}
	reminders := newFakeReminders()
	reminders.reminders["p1"] = []models.Reminder{{
		ID:          "r1",
		ProfileID:   "p1",
		Title:       "Standup",
		Description: "Daily sync",
		DueAt:       dueAt,
	}}
	push := &fakePush{}
	email := &fakeEmail{}

	s := newTestScheduler(profiles, reminders, push, email, dueAt.Add(60*time.Second))
	s.runPass(context.Background())

	if len(email.calls) != 1 {
		t.Fatalf("expected exactly one email, got %d", len(email.calls))
	}
	call := email.calls[0]
	if call.address != "ada@example.com" || call.title != "Standup" || call.description != "Daily sync" || !call.dueAt.Equal(dueAt) {
		t.Errorf("email called with wrong fields: %+v", call)
	}
	if len(push.calls) != 1 {
		t.Errorf("expected one push, got %d", len(push.calls))
	}
	if len(reminders.marked) != 1 || reminders.marked[0] != "r1" {
		t.Errorf("expected r1 marked notified, got %v", reminders.marked)
	}
}

func TestEmailFailureWithholdsFlagAndRetries(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	prefs := allEnabled()
	prefs.PushEnabled = false
	profiles := &fakeProfiles{profiles: []models.Profile{testProfile(prefs)}}
	reminders := newFakeReminders()
	reminders.reminders["p1"] = []models.Reminder{{ID: "r1", ProfileID: "p1", Title: "Standup", DueAt: dueAt}}
	push := &fakePush{}
	email := &fakeEmail{err: errors.New("smtp unavailable")}

	s := newTestScheduler(profiles, reminders, push, email, dueAt.Add(60*time.Second))
	s.runPass(context.Background())

	if len(reminders.marked) != 0 {
		t.Fatalf("flag must be withheld on email failure, got marked=%v", reminders.marked)
	}

	// A later pass inside the window retries the send.
	email.err = nil
	s.now = func() time.Time { return dueAt.Add(90 * time.Second) }
	s.runPass(context.Background())

	if len(email.calls) != 2 {
		t.Errorf("expected a retry email, got %d calls", len(email.calls))
	}
	if len(reminders.marked) != 1 {
		t.Errorf("expected r1 marked after successful retry, got %v", reminders.marked)
	}
}

func TestPassOutsideWindowSkipsForever(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	profiles := &fakeProfiles{profiles: []models.Profile{testProfile(allEnabled())}}
	reminders := newFakeReminders()
	reminders.reminders["p1"] = []models.Reminder{{ID: "r1", ProfileID: "p1", Title: "Standup", DueAt: dueAt}}
	push := &fakePush{}
	email := &fakeEmail{}

	s := newTestScheduler(profiles, reminders, push, email, dueAt.Add(200*time.Second))
	s.runPass(context.Background())

	if len(email.calls) != 0 || len(push.calls) != 0 {
		t.Error("stale reminder must not be delivered")
	}
	if len(reminders.marked) != 0 {
		t.Errorf("stale reminder must keep its flag unset, got %v", reminders.marked)
	}
}

func TestCompletedAndAlreadyNotifiedNeverRedelivered(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	profiles := &fakeProfiles{profiles: []models.Profile{testProfile(allEnabled())}}
	reminders := newFakeReminders()
	reminders.reminders["p1"] = []models.Reminder{
		{ID: "done", ProfileID: "p1", Title: "Done", DueAt: dueAt, Completed: true},
		{ID: "sent", ProfileID: "p1", Title: "Sent", DueAt: dueAt, NotificationSent: true},
	}
	push := &fakePush{}
	email := &fakeEmail{}

	s := newTestScheduler(profiles, reminders, push, email, dueAt)
	s.runPass(context.Background())

	if len(email.calls) != 0 || len(push.calls) != 0 {
		t.Errorf("no channel may fire for completed or already-notified reminders: email=%d push=%d",
			len(email.calls), len(push.calls))
	}
}

func TestDisabledPreferencesSkipReminderFetch(t *testing.T) {
	profiles := &fakeProfiles{profiles: []models.Profile{
		testProfile(models.NotificationPreferences{NotificationsEnabled: true}),
	}}
	reminders := newFakeReminders()
	push := &fakePush{}
	email := &fakeEmail{}

	s := newTestScheduler(profiles, reminders, push, email, time.Now())
	s.runPass(context.Background())

	if reminders.listCalls["p1"] != 0 {
		t.Errorf("reminder fetch must be short-circuited, got %d calls", reminders.listCalls["p1"])
	}
}

func TestMasterToggleOffSkipsProfile(t *testing.T) {
	prefs := allEnabled()
	prefs.NotificationsEnabled = false
	profiles := &fakeProfiles{profiles: []models.Profile{testProfile(prefs)}}
	reminders := newFakeReminders()

	s := newTestScheduler(profiles, reminders, &fakePush{}, &fakeEmail{}, time.Now())
	s.runPass(context.Background())

	if reminders.listCalls["p1"] != 0 {
		t.Errorf("disabled profile must not be fetched, got %d calls", reminders.listCalls["p1"])
	}
}

func TestPushOnlyMarksNotifiedUnconditionally(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	prefs := allEnabled()
	prefs.EmailEnabled = false
	profiles := &fakeProfiles{profiles: []models.Profile{testProfile(prefs)}}
	reminders := newFakeReminders()
	reminders.reminders["p1"] = []models.Reminder{{ID: "r1", ProfileID: "p1", Title: "Standup", DueAt: dueAt}}
	push := &fakePush{err: errors.New("fcm down")}
	email := &fakeEmail{}

	s := newTestScheduler(profiles, reminders, push, email, dueAt)
	s.runPass(context.Background())

	if len(email.calls) != 0 {
		t.Error("email channel must stay silent when disabled")
	}
	// Push delivery cannot be confirmed; the flag is set regardless of
	// the push outcome.
	if len(reminders.marked) != 1 {
		t.Errorf("push-only delivery must mark notified, got %v", reminders.marked)
	}
}

func TestPushFailureDoesNotBlockEmail(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	profiles := &fakeProfiles{profiles: []models.Profile{testProfile(allEnabled())}}
	reminders := newFakeReminders()
	reminders.reminders["p1"] = []models.Reminder{{ID: "r1", ProfileID: "p1", Title: "Standup", DueAt: dueAt}}
	push := &fakePush{err: errors.New("fcm down")}
	email := &fakeEmail{}

	s := newTestScheduler(profiles, reminders, push, email, dueAt)
	s.runPass(context.Background())

	if len(email.calls) != 1 {
		t.Errorf("email must be attempted despite push failure, got %d", len(email.calls))
	}
	if len(reminders.marked) != 1 {
		t.Errorf("expected reminder marked, got %v", reminders.marked)
	}
}

func TestProfileFailureIsolated(t *testing.T) {
	dueAt := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	broken := testProfile(allEnabled())
	broken.ID = "p0"
	healthy := testProfile(allEnabled())
	profiles := &fakeProfiles{profiles: []models.Profile{broken, healthy}}

	reminders := newFakeReminders()
	reminders.reminders["p1"] = []models.Reminder{{ID: "r1", ProfileID: "p1", Title: "Standup", DueAt: dueAt}}
	// The first profile's fetch fails, the second succeeds.
	firstCall := true
	wrapped := &flakyReminders{inner: reminders, failFirst: &firstCall}

	push := &fakePush{}
	email := &fakeEmail{}
	s := newTestScheduler(profiles, wrapped, push, email, dueAt)
	s.runPass(context.Background())

	if len(email.calls) != 1 {
		t.Errorf("second profile must still be processed, got %d emails", len(email.calls))
	}
}

type flakyReminders struct {
	inner     *fakeReminders
	failFirst *bool
}

func (f *flakyReminders) ListActive(ctx context.Context, profileID string) ([]models.Reminder, error) {
	if *f.failFirst {
		*f.failFirst = false
		return nil, errors.New("backend unavailable")
	}
	return f.inner.ListActive(ctx, profileID)
}

func (f *flakyReminders) MarkNotified(ctx context.Context, id string) error {
	return f.inner.MarkNotified(ctx, id)
}

func TestStartIsIdempotent(t *testing.T) {
	profiles := &fakeProfiles{}
	s := New(profiles, newFakeReminders(), &fakePush{}, &fakeEmail{}, time.Hour, nil)

	ctx := context.Background()
	var started int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Start(ctx) {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if started != 1 {
		t.Errorf("expected exactly one successful start, got %d", started)
	}
	if !s.Running() {
		t.Error("scheduler should be running")
	}

	s.Stop()
	if s.Running() {
		t.Error("scheduler should be stopped after Stop")
	}

	// A stopped scheduler can be started again.
	if !s.Start(ctx) {
		t.Error("restart after Stop should succeed")
	}
	s.Stop()
}

func TestStopViaContextCancel(t *testing.T) {
	s := New(&fakeProfiles{}, newFakeReminders(), &fakePush{}, &fakeEmail{}, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	// The loop observes cancellation and winds down.
	deadline := time.After(2 * time.Second)
	for s.Running() {
		select {
		case <-deadline:
			t.Fatal("scheduler did not stop after context cancellation")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
