// Package store provides the shared key-value state used by the idempotency
// guard and the rate limiter. Implementations must be safe for use by many
// consumer instances at once, so the production one lives in Redis.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidTTL is returned when a counter or marker is written without expiry.
var ErrInvalidTTL = errors.New("ttl must be positive")

// Store is the capability set the pipeline needs from shared state.
type Store interface {
	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// SetWithTTL stores value under key, replacing any previous value.
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error

	// IncrWithTTL increments the counter and refreshes its expiry.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// IncrBelow increments the counter only while it is below limit. The
	// expiry is set when the counter is created. It returns the counter value
	// after the call and whether the increment happened.
	IncrBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (int64, bool, error)

	// Count returns the counter value, zero when the key is absent.
	Count(ctx context.Context, key string) (int64, error)
}
