package escalation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.NotificationEvent
	got    chan struct{}
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{got: make(chan struct{}, 16)}
}

func (p *recordingPublisher) PublishEvent(_ context.Context, e model.NotificationEvent) error {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
	p.got <- struct{}{}
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func TestTimerScheduler_PublishesAfterDelay(t *testing.T) {
	pub := newRecordingPublisher()
	s := NewTimerScheduler(pub)

	start := time.Now()
	require.NoError(t, s.Schedule(context.Background(), testEvent(1), 20*time.Millisecond))
	assert.Equal(t, 1, s.Pending())

	select {
	case <-pub.got:
	case <-time.After(time.Second):
		t.Fatal("event not re-published")
	}

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, 1, pub.count())
	assert.Equal(t, 0, s.Pending())
}

func TestTimerScheduler_ScheduleDoesNotBlock(t *testing.T) {
	s := NewTimerScheduler(newRecordingPublisher())

	start := time.Now()
	require.NoError(t, s.Schedule(context.Background(), testEvent(1), time.Hour))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	require.NoError(t, s.Close(context.Background()))
}

func TestTimerScheduler_CloseFlushesPending(t *testing.T) {
	pub := newRecordingPublisher()
	s := NewTimerScheduler(pub)

	require.NoError(t, s.Schedule(context.Background(), testEvent(1), time.Hour))
	require.NoError(t, s.Schedule(context.Background(), testEvent(2), time.Hour))

	require.NoError(t, s.Close(context.Background()))

	assert.Equal(t, 2, pub.count())
	assert.Equal(t, 0, s.Pending())
	assert.ErrorIs(t, s.Schedule(context.Background(), testEvent(1), time.Second), ErrSchedulerClosed)
}
