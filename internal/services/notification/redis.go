package notification

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-campaign-api/internal/redis"
)

// DefaultChannel is the pub/sub channel used when none is configured
const DefaultChannel = "rpg:notifications"

// RedisConfig holds the dependencies for a RedisNotifier
type RedisConfig struct {
	Client  redis.Client
	Channel string
	Clock   clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// RedisNotifier publishes notifications as JSON on a Redis channel so other
// processes sharing the store can surface them
type RedisNotifier struct {
	client  redis.Client
	channel string
	clock   clock.Clock
}

// NewRedisNotifier creates a RedisNotifier
func NewRedisNotifier(cfg *RedisConfig) (*RedisNotifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &RedisNotifier{
		client:  cfg.Client,
		channel: channel,
		clock:   cfg.Clock,
	}, nil
}

// Channel returns the channel notifications are published on
func (n *RedisNotifier) Channel() string {
	return n.channel
}

// Notify publishes the notification; failures are logged
func (n *RedisNotifier) Notify(ctx context.Context, kind Kind, message string) {
	payload, err := json.Marshal(Notification{
		Kind:      kind,
		Message:   message,
		Timestamp: n.clock.Now(),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to encode notification", "error", err)
		return
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		slog.WarnContext(ctx, "failed to publish notification",
			"channel", n.channel,
			"error", err)
	}
}
