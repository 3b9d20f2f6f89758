package notification

import (
	"context"
	"testing"

	"github.com/Nadeem-mohammad0021/assistant/models"
)

func TestPushNotifySkipsProfileWithoutToken(t *testing.T) {
	// No device token means no push target; the channel degrades to a
	// silent no-op without ever touching the queue (which is nil here
	// and would panic if used).
	c := NewAsyncPushChannel(nil, nil)

	profile := &models.Profile{ID: "p1", DisplayName: "Ada"}
	if err := c.Notify(context.Background(), profile, "Standup", "due now", nil); err != nil {
		t.Errorf("expected silent no-op, got %v", err)
	}
}
