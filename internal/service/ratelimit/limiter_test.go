package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notification-pipeline/internal/model"
	"github.com/aliskhannn/notification-pipeline/internal/store"
)

func TestLimiter_ExactlyLimitCallsAllowed(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC)
	l := NewLimiter(store.NewMemoryStore(), map[model.Channel]int64{model.ChannelSMS: 3},
		WithClock(func() time.Time { return now }))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "u1", model.ChannelSMS)
		require.NoError(t, err)
		assert.True(t, ok, "call %d", i+1)
	}

	ok, err := l.Allow(ctx, "u1", model.ChannelSMS)
	require.NoError(t, err)
	assert.False(t, ok)

	used, err := l.Used(ctx, "u1", model.ChannelSMS)
	require.NoError(t, err)
	assert.Equal(t, int64(3), used)
}

func TestLimiter_NewHourResets(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 59, 0, 0, time.UTC)
	l := NewLimiter(store.NewMemoryStore(), map[model.Channel]int64{model.ChannelEmail: 1},
		WithClock(func() time.Time { return now }))
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "u1", model.ChannelEmail)
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "u1", model.ChannelEmail)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)

	used, err := l.Used(ctx, "u1", model.ChannelEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(0), used)

	ok, _ = l.Allow(ctx, "u1", model.ChannelEmail)
	assert.True(t, ok)
}

func TestLimiter_IsolatedPerUserAndChannel(t *testing.T) {
	l := NewLimiter(store.NewMemoryStore(), map[model.Channel]int64{
		model.ChannelEmail: 1,
		model.ChannelSMS:   1,
	})
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "u1", model.ChannelEmail)
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "u1", model.ChannelSMS)
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "u2", model.ChannelEmail)
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "u1", model.ChannelEmail)
	assert.False(t, ok)
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l := NewLimiter(store.NewMemoryStore(), map[model.Channel]int64{"email": 7})

	assert.Equal(t, int64(7), l.Limit(model.ChannelEmail))
	assert.Equal(t, DefaultLimit, l.Limit(model.Channel("FAX")))
}

func TestLimiter_KeyUsesUTCHour(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2024, 5, 1, 13, 30, 0, 0, loc)
	l := NewLimiter(store.NewRedisStore(client), map[model.Channel]int64{model.ChannelPush: 200},
		WithClock(func() time.Time { return now }))

	ok, err := l.Allow(context.Background(), "u1", model.ChannelPush)
	require.NoError(t, err)
	assert.True(t, ok)

	val, err := mr.Get("rate-limit:u1:PUSH:2024-05-01-10")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
	assert.Equal(t, time.Hour, mr.TTL("rate-limit:u1:PUSH:2024-05-01-10"))
}

func TestLimiter_StoreFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	l := NewLimiter(store.NewRedisStore(client), nil)

	ok, err := l.Allow(context.Background(), "u1", model.ChannelEmail)
	assert.Error(t, err)
	assert.False(t, ok)
}
