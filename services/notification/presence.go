package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// PresenceTTL is how long a heartbeat keeps a profile marked active.
const PresenceTTL = 60 * time.Second

// PresenceTracker records which profiles currently have the app open.
// A profile that is active in-app does not get a push for information
// it can already see; the in-app feed covers it.
type PresenceTracker struct {
	client *redis.Client
}

// NewPresenceTracker creates a tracker backed by the given Redis client.
func NewPresenceTracker(client *redis.Client) *PresenceTracker {
	return &PresenceTracker{client: client}
}

func presenceKey(profileID string) string {
	return fmt.Sprintf("presence:%s", profileID)
}

// Heartbeat marks a profile active for the next PresenceTTL.
func (t *PresenceTracker) Heartbeat(ctx context.Context, profileID string) error {
	if err := t.client.Set(ctx, presenceKey(profileID), "1", PresenceTTL).Err(); err != nil {
		return fmt.Errorf("failed to record presence for %s: %w", profileID, err)
	}
	return nil
}

// IsActive reports whether a profile has sent a heartbeat recently.
func (t *PresenceTracker) IsActive(ctx context.Context, profileID string) (bool, error) {
	n, err := t.client.Exists(ctx, presenceKey(profileID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check presence for %s: %w", profileID, err)
	}
	return n > 0, nil
}
