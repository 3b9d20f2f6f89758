package scheduler

import "time"

// DueWindow is the tolerance around a reminder's due time during which
// it is still eligible for notification. Polling is periodic rather
// than event-driven, so a pass may land anywhere inside the window;
// the notificationSent flag is the actual de-dup guard, the window
// only bounds how late a delivery may still count as on time.
const DueWindow = 2 * time.Minute

// IsDue reports whether a reminder due at dueAt should fire at now.
// Both window boundaries are inclusive. Reminders past the window are
// never considered again: no catch-up firing for stale reminders after
// the service has been down.
func IsDue(now, dueAt time.Time) bool {
	return !now.Before(dueAt.Add(-DueWindow)) && !now.After(dueAt.Add(DueWindow))
}
