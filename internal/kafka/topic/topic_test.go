package topic

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

var strategy = retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

type fakeWriter struct {
	fails int
	msgs  []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.fails > 0 {
		w.fails--
		return errors.New("leader not available")
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

var topics = Topics{Input: "in", Output: "out", DLQ: "dlq"}

func TestPublisher_RoutesByTopicAndKey(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, topics, strategy)
	ctx := context.Background()

	ev := model.NotificationEvent{NotificationID: "n-1", UserID: "u-1", Channels: []model.Channel{model.ChannelSMS}}

	require.NoError(t, p.PublishEvent(ctx, ev))
	require.NoError(t, p.PublishProcessed(ctx, model.NewProcessedEvent(ev, model.StatusProcessed, "ok", time.Now())))
	require.NoError(t, p.PublishDeadLetter(ctx, model.DeadLetter{Event: ev, Reason: "down"}))

	require.Len(t, w.msgs, 3)
	assert.Equal(t, []string{"in", "out", "dlq"}, []string{w.msgs[0].Topic, w.msgs[1].Topic, w.msgs[2].Topic})
	for _, m := range w.msgs {
		assert.Equal(t, "n-1", string(m.Key))
	}

	var decoded model.NotificationEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, ev.Channels, decoded.Channels)
}

func TestPublisher_RetriesTransientErrors(t *testing.T) {
	w := &fakeWriter{fails: 1}
	p := newPublisher(w, topics, strategy)

	require.NoError(t, p.PublishEvent(context.Background(), model.NotificationEvent{NotificationID: "n-1"}))
	assert.Len(t, w.msgs, 1)
}

func TestPublisher_GivesUp(t *testing.T) {
	w := &fakeWriter{fails: 100}
	p := newPublisher(w, topics, strategy)

	err := p.PublishEvent(context.Background(), model.NotificationEvent{NotificationID: "n-1"})
	assert.Error(t, err)
	assert.Empty(t, w.msgs)
}

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
	commitErr error
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	if r.commitErr != nil {
		return r.commitErr
	}
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestConsumer_FetchAndCommit(t *testing.T) {
	r := &fakeReader{msgs: []kafka.Message{{Partition: 2, Offset: 10, Value: []byte("{}")}}}
	c := newConsumer(r, strategy)
	ctx := context.Background()

	msg, err := c.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), msg.Offset)

	require.NoError(t, c.Commit(ctx, msg))
	assert.Equal(t, []kafka.Message{msg}, r.committed)
}

func TestConsumer_FetchCancelled(t *testing.T) {
	c := newConsumer(&fakeReader{}, strategy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsumer_CommitFailure(t *testing.T) {
	c := newConsumer(&fakeReader{commitErr: errors.New("rebalance in progress")}, strategy)

	err := c.Commit(context.Background(), kafka.Message{Partition: 1, Offset: 3})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rebalance in progress")
}
