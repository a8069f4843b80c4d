package notification

import (
	"context"

	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock"
)

// Broadcaster pushes notifications to live subscribers
type Broadcaster interface {
	BroadcastNotification(n Notification)
}

// FeedNotifier forwards notifications to a live feed
type FeedNotifier struct {
	feed  Broadcaster
	clock clock.Clock
}

// NewFeedNotifier returns a FeedNotifier; a nil clock uses the real clock
func NewFeedNotifier(feed Broadcaster, c clock.Clock) *FeedNotifier {
	if c == nil {
		c = clock.New()
	}
	return &FeedNotifier{feed: feed, clock: c}
}

// Notify broadcasts the notification
func (n *FeedNotifier) Notify(_ context.Context, kind Kind, message string) {
	if n.feed == nil {
		return
	}
	n.feed.BroadcastNotification(Notification{
		Kind:      kind,
		Message:   message,
		Timestamp: n.clock.Now(),
	})
}
