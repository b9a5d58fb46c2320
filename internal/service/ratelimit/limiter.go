package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

const (
	keyPrefix    = "rate-limit:"
	bucketLayout = "2006-01-02-15"
	window       = time.Hour

	// DefaultLimit applies to channels without a configured ceiling.
	DefaultLimit int64 = 100
)

type counterStore interface {
	IncrBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (int64, bool, error)
	Count(ctx context.Context, key string) (int64, error)
}

// Limiter enforces an hourly ceiling per user and channel. Windows are
// aligned to UTC hours so every instance agrees on the bucket.
type Limiter struct {
	store  counterStore
	limits map[model.Channel]int64
	now    func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// NewLimiter creates a Limiter with per-channel ceilings.
func NewLimiter(store counterStore, limits map[model.Channel]int64, opts ...Option) *Limiter {
	l := &Limiter{
		store:  store,
		limits: make(map[model.Channel]int64, len(limits)),
		now:    time.Now,
	}

	for ch, limit := range limits {
		l.limits[ch.Normalize()] = limit
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Limit returns the hourly ceiling for ch.
func (l *Limiter) Limit(ch model.Channel) int64 {
	if limit, ok := l.limits[ch.Normalize()]; ok {
		return limit
	}

	return DefaultLimit
}

func (l *Limiter) key(userID string, ch model.Channel) string {
	return fmt.Sprintf("%s%s:%s:%s", keyPrefix, userID, ch.Normalize(), l.now().UTC().Format(bucketLayout))
}

// Allow consumes one unit of the user's budget for ch in the current hour.
// It returns false, without consuming, once the ceiling is reached.
func (l *Limiter) Allow(ctx context.Context, userID string, ch model.Channel) (bool, error) {
	_, allowed, err := l.store.IncrBelow(ctx, l.key(userID, ch), l.Limit(ch), window)
	if err != nil {
		return false, fmt.Errorf("rate limit %s/%s: %w", userID, ch, err)
	}

	return allowed, nil
}

// Used returns how many sends the user made on ch in the current hour.
func (l *Limiter) Used(ctx context.Context, userID string, ch model.Channel) (int64, error) {
	n, err := l.store.Count(ctx, l.key(userID, ch))
	if err != nil {
		return 0, fmt.Errorf("rate limit usage %s/%s: %w", userID, ch, err)
	}

	return n, nil
}
