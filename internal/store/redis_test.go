package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_SetWithTTLAndExists(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetWithTTL(ctx, "k", "PROCESSED", time.Minute))

	ok, err = s.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = s.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_SetWithTTLRejectsZeroTTL(t *testing.T) {
	s, _ := newRedisStore(t)

	err := s.SetWithTTL(context.Background(), "k", "v", 0)
	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestRedisStore_IncrWithTTLRefreshesExpiry(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	n, err := s.IncrWithTTL(ctx, "retry", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mr.FastForward(50 * time.Second)

	n, err = s.IncrWithTTL(ctx, "retry", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mr.FastForward(50 * time.Second)

	count, err := s.Count(ctx, "retry")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRedisStore_IncrBelow(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		n, allowed, err := s.IncrBelow(ctx, "rl", 3, time.Hour)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, i, n)
	}

	n, allowed, err := s.IncrBelow(ctx, "rl", 3, time.Hour)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, int64(3), n)

	assert.Equal(t, time.Hour, mr.TTL("rl"))
}

func TestRedisStore_IncrBelowZeroLimit(t *testing.T) {
	s, _ := newRedisStore(t)

	n, allowed, err := s.IncrBelow(context.Background(), "rl", 0, time.Hour)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, int64(0), n)
}

func TestRedisStore_CountMissingKey(t *testing.T) {
	s, _ := newRedisStore(t)

	n, err := s.Count(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	_, err := s.Exists(context.Background(), "k")
	assert.Error(t, err)
}
