package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"go.uber.org/zap"
)

// DefaultPollInterval is the pause between evaluation passes.
const DefaultPollInterval = 30 * time.Second

// Scheduler owns the reminder notification loop: a recurring timer
// that scans every notifiable profile's reminders, decides which are
// due, and fans each one out to the enabled delivery channels.
//
// The scheduler is the only writer of the notificationSent flag. A
// reminder whose flag update fails is simply retried on the next pass
// while it remains inside the due window; duplicate delivery is the
// accepted failure mode, silent loss is not.
type Scheduler struct {
	profiles  ProfileSource
	reminders ReminderSource
	push      PushChannel
	email     EmailChannel

	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New constructs a stopped scheduler. A non-positive interval falls
// back to DefaultPollInterval.
func New(profiles ProfileSource, reminders ReminderSource, push PushChannel, email EmailChannel, interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		profiles:  profiles,
		reminders: reminders,
		push:      push,
		email:     email,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

// Start arms the recurring timer and runs one evaluation pass
// immediately. It is idempotent: while the scheduler is running,
// further Start calls are no-ops and return false. The loop exits when
// ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	return true
}

// Stop cancels the timer loop and waits for the in-flight pass, if
// any, to finish. Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
}

// Running reports whether the timer loop is currently armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		close(done)
	}()

	s.logger.Info("reminder scheduler started", zap.Duration("interval", s.interval))
	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

// runPass executes one full evaluation pass. Failures are isolated
// per profile and per reminder: one broken item never halts the pass.
func (s *Scheduler) runPass(ctx context.Context) {
	profiles, err := s.profiles.ListNotifiable(ctx)
	if err != nil {
		s.logger.Error("failed to list notifiable profiles", zap.Error(err))
		return
	}

	now := s.now()
	for i := range profiles {
		if ctx.Err() != nil {
			return
		}
		s.processProfile(ctx, now, &profiles[i])
	}
}

func (s *Scheduler) processProfile(ctx context.Context, now time.Time, profile *models.Profile) {
	prefs := profile.Preferences
	// Nothing to deliver through: skip before touching the reminder
	// store at all.
	if !prefs.NotificationsEnabled || (!prefs.EmailEnabled && !prefs.PushEnabled) {
		return
	}

	reminders, err := s.reminders.ListActive(ctx, profile.ID)
	if err != nil {
		s.logger.Error("failed to list reminders",
			zap.String("profileId", profile.ID), zap.Error(err))
		return
	}

	for i := range reminders {
		r := &reminders[i]
		if r.Completed || r.NotificationSent || !IsDue(now, r.DueAt) {
			continue
		}
		s.deliver(ctx, profile, r)
	}
}

// deliver fans one due reminder out to the enabled channels and
// records delivery. Push is best-effort; email confirmation gates the
// de-dup flag whenever email is the active channel.
func (s *Scheduler) deliver(ctx context.Context, profile *models.Profile, r *models.Reminder) {
	prefs := profile.Preferences
	title := fmt.Sprintf("⏰ Reminder: %s", r.Title)
	body := fmt.Sprintf("Hey %s, %q is due now.", profile.FirstName(), r.Title)
	if r.Description != "" {
		body = fmt.Sprintf("%s %s", body, r.Description)
	}

	if prefs.PushEnabled {
		data := map[string]string{
			"type":       "reminder",
			"reminderId": r.ID,
			"dueAt":      r.DueAt.Format(time.RFC3339),
		}
		if err := s.push.Notify(ctx, profile, title, body, data); err != nil {
			s.logger.Warn("push delivery failed",
				zap.String("reminderId", r.ID), zap.Error(err))
		}
	}

	if prefs.EmailEnabled {
		if err := s.email.Notify(ctx, profile.Email, profile.DisplayName, r.Title, r.Description, r.DueAt); err != nil {
			// Withhold the flag so the reminder is retried while it
			// remains inside the due window.
			s.logger.Error("email delivery failed",
				zap.String("reminderId", r.ID), zap.Error(err))
			return
		}
	}

	if err := s.reminders.MarkNotified(ctx, r.ID); err != nil {
		s.logger.Error("failed to mark reminder notified",
			zap.String("reminderId", r.ID), zap.Error(err))
	}
}
