// Package broadcast publishes real-time status messages over Redis Pub/Sub.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

// Destinations names the Pub/Sub channels messages go to.
type Destinations struct {
	UserPrefix string // per-user channel is UserPrefix + userID
	Broadcast  string // shared channel for dashboards
	Metrics    string // periodic metrics snapshots
}

// RedisBroadcaster sends status messages to Redis Pub/Sub channels.
type RedisBroadcaster struct {
	client redis.UniversalClient
	dest   Destinations
}

// NewRedisBroadcaster creates a broadcaster over client.
func NewRedisBroadcaster(client redis.UniversalClient, dest Destinations) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, dest: dest}
}

// UserChannel returns the private destination of userID.
func (b *RedisBroadcaster) UserChannel(userID string) string {
	return b.dest.UserPrefix + userID
}

// SendToUser publishes msg on the user's private destination.
func (b *RedisBroadcaster) SendToUser(ctx context.Context, userID string, msg model.StatusMessage) error {
	return b.publish(ctx, b.UserChannel(userID), msg)
}

// SendToAll publishes msg on the shared destination.
func (b *RedisBroadcaster) SendToAll(ctx context.Context, msg model.StatusMessage) error {
	return b.publish(ctx, b.dest.Broadcast, msg)
}

// SendMetrics publishes msg on the metrics destination.
func (b *RedisBroadcaster) SendMetrics(ctx context.Context, msg model.StatusMessage) error {
	return b.publish(ctx, b.dest.Metrics, msg)
}

// Subscribe listens on the user's destination, or on the shared one when
// userID is empty. The caller closes the returned subscription.
func (b *RedisBroadcaster) Subscribe(ctx context.Context, userID string) *redis.PubSub {
	if userID == "" {
		return b.client.Subscribe(ctx, b.dest.Broadcast, b.dest.Metrics)
	}

	return b.client.Subscribe(ctx, b.UserChannel(userID))
}

func (b *RedisBroadcaster) publish(ctx context.Context, channel string, msg model.StatusMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal status message: %w", err)
	}

	if err := b.client.Publish(ctx, channel, body).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	return nil
}
