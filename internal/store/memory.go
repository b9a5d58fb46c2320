package store

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is a process-local Store for tests and single-instance runs.
// It does not coordinate across instances.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]entry
	now   func() time.Time
}

// NewMemoryStore creates an empty store using the wall clock.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock creates an empty store reading time from now.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{items: make(map[string]entry), now: now}
}

// lookup returns the live entry for key, dropping it when expired.
func (s *MemoryStore) lookup(key string) (entry, bool) {
	e, ok := s.items[key]
	if !ok {
		return entry{}, false
	}

	if !s.now().Before(e.expiresAt) {
		delete(s.items, key)
		return entry{}, false
	}

	return e, true
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.lookup(key)
	return ok, nil
}

func (s *MemoryStore) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) IncrWithTTL(_ context.Context, key string, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, ErrInvalidTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, _ := s.lookup(key)
	n, _ := strconv.ParseInt(e.value, 10, 64)
	n++

	s.items[key] = entry{value: strconv.FormatInt(n, 10), expiresAt: s.now().Add(ttl)}
	return n, nil
}

func (s *MemoryStore) IncrBelow(_ context.Context, key string, limit int64, ttl time.Duration) (int64, bool, error) {
	if ttl <= 0 {
		return 0, false, ErrInvalidTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	n, _ := strconv.ParseInt(e.value, 10, 64)
	if n >= limit {
		return n, false, nil
	}

	n++
	if !ok {
		e.expiresAt = s.now().Add(ttl)
	}
	e.value = strconv.FormatInt(n, 10)
	s.items[key] = e

	return n, true, nil
}

func (s *MemoryStore) Count(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}

	return strconv.ParseInt(e.value, 10, 64)
}
