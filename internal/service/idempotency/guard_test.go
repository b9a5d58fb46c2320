package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notification-pipeline/internal/store"
)

var errDown = errors.New("store down")

type failingStore struct{}

func (failingStore) Exists(context.Context, string) (bool, error) { return false, errDown }
func (failingStore) SetWithTTL(context.Context, string, string, time.Duration) error {
	return errDown
}
func (failingStore) IncrWithTTL(context.Context, string, time.Duration) (int64, error) {
	return 0, errDown
}
func (failingStore) Count(context.Context, string) (int64, error) { return 0, errDown }

func TestGuard_MarkThenIsProcessed(t *testing.T) {
	g := NewGuard(store.NewMemoryStore(), time.Hour)
	ctx := context.Background()

	assert.False(t, g.IsProcessed(ctx, "n-1"))

	require.NoError(t, g.MarkProcessed(ctx, "n-1"))

	assert.True(t, g.IsProcessed(ctx, "n-1"))
	assert.False(t, g.IsProcessed(ctx, "n-2"))
}

func TestGuard_MarkIsIdempotent(t *testing.T) {
	g := NewGuard(store.NewMemoryStore(), time.Hour)
	ctx := context.Background()

	require.NoError(t, g.MarkProcessed(ctx, "n-1"))
	require.NoError(t, g.MarkProcessed(ctx, "n-1"))

	assert.True(t, g.IsProcessed(ctx, "n-1"))
}

func TestGuard_RetryCounter(t *testing.T) {
	g := NewGuard(store.NewMemoryStore(), time.Hour)
	ctx := context.Background()

	n, err := g.RetryCount(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	for want := int64(1); want <= 3; want++ {
		n, err = g.IncrementRetry(ctx, "n-1")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, err = g.RetryCount(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// Retry counter does not mark the notification processed.
	assert.False(t, g.IsProcessed(ctx, "n-1"))
}

func TestGuard_StoreFailure(t *testing.T) {
	g := NewGuard(failingStore{}, time.Hour)
	ctx := context.Background()

	assert.False(t, g.IsProcessed(ctx, "n-1"))

	err := g.MarkProcessed(ctx, "n-1")
	assert.ErrorIs(t, err, errDown)

	_, err = g.IncrementRetry(ctx, "n-1")
	assert.ErrorIs(t, err, errDown)

	_, err = g.RetryCount(ctx, "n-1")
	assert.ErrorIs(t, err, errDown)
}
