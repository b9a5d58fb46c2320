package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// incrBelowScript performs the bounded increment atomically on the server.
// KEYS[1] counter, ARGV[1] limit, ARGV[2] ttl in milliseconds.
var incrBelowScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= tonumber(ARGV[1]) then
	return {current, 0}
end
current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return {current, 1}
`)

// RedisStore implements Store on top of a go-redis client.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore wraps the given client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

// Exists reports whether key is present.
func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", key, err)
	}

	return n > 0, nil
}

// SetWithTTL stores value under key with the given expiry.
func (s *RedisStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

// IncrWithTTL increments key and refreshes its expiry in one transaction.
func (s *RedisStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, ErrInvalidTTL
	}

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}

	return incr.Val(), nil
}

// IncrBelow increments key only while it is below limit.
func (s *RedisStore) IncrBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (int64, bool, error) {
	if ttl <= 0 {
		return 0, false, ErrInvalidTTL
	}

	res, err := incrBelowScript.Run(ctx, s.client, []string{key}, limit, ttl.Milliseconds()).Result()
	if err != nil {
		return 0, false, fmt.Errorf("bounded incr %s: %w", key, err)
	}

	values, ok := res.([]interface{})
	if !ok || len(values) != 2 {
		return 0, false, fmt.Errorf("bounded incr %s: unexpected reply %v", key, res)
	}

	count, _ := values[0].(int64)
	allowed, _ := values[1].(int64)

	return count, allowed == 1, nil
}

// Count returns the counter stored under key.
func (s *RedisStore) Count(ctx context.Context, key string) (int64, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse counter %s: %w", key, err)
	}

	return n, nil
}
