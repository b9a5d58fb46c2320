package escalation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

// ErrSchedulerClosed is returned by Schedule after Close.
var ErrSchedulerClosed = errors.New("scheduler closed")

type eventPublisher interface {
	PublishEvent(ctx context.Context, event model.NotificationEvent) error
}

// TimerScheduler re-publishes events after their delay using in-process
// timers. Pending retries live only in memory.
type TimerScheduler struct {
	publisher eventPublisher

	mu      sync.Mutex
	pending map[*time.Timer]model.NotificationEvent
	closed  bool
	wg      sync.WaitGroup
}

// NewTimerScheduler creates a scheduler publishing through p.
func NewTimerScheduler(p eventPublisher) *TimerScheduler {
	return &TimerScheduler{
		publisher: p,
		pending:   make(map[*time.Timer]model.NotificationEvent),
	}
}

// Schedule arms a timer and returns immediately.
func (s *TimerScheduler) Schedule(_ context.Context, event model.NotificationEvent, delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSchedulerClosed
	}

	var t *time.Timer
	s.wg.Add(1)
	t = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		_, ok := s.pending[t]
		delete(s.pending, t)
		s.mu.Unlock()

		if ok {
			s.publish(event)
		}
	})
	s.pending[t] = event

	return nil
}

// Pending returns the number of armed timers.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}

// Close stops accepting work and publishes every pending event right away
// so no retry is lost on shutdown.
func (s *TimerScheduler) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	flush := make([]model.NotificationEvent, 0, len(s.pending))
	for t, event := range s.pending {
		if t.Stop() {
			s.wg.Done()
		}
		flush = append(flush, event)
		delete(s.pending, t)
	}
	s.mu.Unlock()

	for _, event := range flush {
		s.publish(event)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *TimerScheduler) publish(event model.NotificationEvent) {
	if err := s.publisher.PublishEvent(context.Background(), event); err != nil {
		zlog.Logger.Error().Err(err).
			Str("notification_id", event.NotificationID).
			Int("retry_count", event.RetryCount).
			Msg("failed to re-publish retry")
		return
	}

	zlog.Logger.Info().
		Str("notification_id", event.NotificationID).
		Int("retry_count", event.RetryCount).
		Msg("retry re-published")
}
