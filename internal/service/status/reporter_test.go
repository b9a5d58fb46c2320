package status

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notification-pipeline/internal/breaker"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

type captureSender struct {
	mu   sync.Mutex
	msgs []model.StatusMessage
}

func (c *captureSender) SendMetrics(_ context.Context, msg model.StatusMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *captureSender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

type staticStates map[model.Channel]breaker.State

func (s staticStates) States() map[model.Channel]breaker.State { return s }

func TestReporter_Report(t *testing.T) {
	sender := &captureSender{}
	r := NewReporter(sender, staticStates{model.ChannelEmail: breaker.Open}, time.Minute)

	require.NoError(t, r.Report(context.Background()))

	require.Len(t, sender.msgs, 1)
	msg := sender.msgs[0]
	assert.Equal(t, model.MessageMetrics, msg.Type)

	data, ok := msg.Data.(MetricsData)
	require.True(t, ok)
	assert.Equal(t, "OPEN", data.Breakers[model.ChannelEmail])
}

func TestReporter_RunTicksUntilCancelled(t *testing.T) {
	sender := &captureSender{}
	r := NewReporter(sender, staticStates{}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sender.count() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop")
	}
}
