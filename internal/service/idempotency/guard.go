package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"
)

const (
	keyPrefix      = "notification:processed:"
	retrySuffix    = ":retry"
	processedValue = "PROCESSED"
)

type markerStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Count(ctx context.Context, key string) (int64, error)
}

// Guard remembers which notifications have completed processing so that
// redelivered events are not handled twice.
type Guard struct {
	store markerStore
	ttl   time.Duration
}

// NewGuard creates a Guard whose markers and retry counters live for ttl.
func NewGuard(store markerStore, ttl time.Duration) *Guard {
	return &Guard{store: store, ttl: ttl}
}

func processedKey(id string) string {
	return keyPrefix + id
}

func retryKey(id string) string {
	return keyPrefix + id + retrySuffix
}

// IsProcessed reports whether the notification was already handled.
//
// A store failure is logged and treated as not processed, so processing
// continues rather than dropping the event.
func (g *Guard) IsProcessed(ctx context.Context, notificationID string) bool {
	ok, err := g.store.Exists(ctx, processedKey(notificationID))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", notificationID).Msg("failed to check processed marker")
		return false
	}

	return ok
}

// MarkProcessed records that the notification reached a terminal outcome.
func (g *Guard) MarkProcessed(ctx context.Context, notificationID string) error {
	if err := g.store.SetWithTTL(ctx, processedKey(notificationID), processedValue, g.ttl); err != nil {
		return fmt.Errorf("mark processed %s: %w", notificationID, err)
	}

	return nil
}

// IncrementRetry bumps the per-notification retry counter and returns it.
func (g *Guard) IncrementRetry(ctx context.Context, notificationID string) (int64, error) {
	n, err := g.store.IncrWithTTL(ctx, retryKey(notificationID), g.ttl)
	if err != nil {
		return 0, fmt.Errorf("increment retry %s: %w", notificationID, err)
	}

	return n, nil
}

// RetryCount returns the stored retry counter, zero when none exists.
func (g *Guard) RetryCount(ctx context.Context, notificationID string) (int64, error) {
	n, err := g.store.Count(ctx, retryKey(notificationID))
	if err != nil {
		return 0, fmt.Errorf("retry count %s: %w", notificationID, err)
	}

	return n, nil
}
