package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

var ErrNoDelays = errors.New("at least one delay is required")

// Topology names the exchange and queues used for delayed retries.
type Topology struct {
	Exchange    string
	DelayPrefix string
	ReadyQueue  string
	Delays      []time.Duration
}

// DelayQueueName returns the queue holding messages for delay d.
func DelayQueueName(prefix string, d time.Duration) string {
	return fmt.Sprintf("%s.%d", prefix, d.Milliseconds())
}

// RetryQueue parks events in per-delay TTL queues. Expired messages are
// dead-lettered into the ready queue, from which Consume reads them.
type RetryQueue struct {
	publisher *rabbitmq.Publisher
	consumer  *rabbitmq.Consumer
	prefix    string
	delays    []time.Duration
	strategy  retry.Strategy
}

// NewRetryQueue declares the topology on ch.
func NewRetryQueue(ch *rabbitmq.Channel, t Topology, strategy retry.Strategy) (*RetryQueue, error) {
	if len(t.Delays) == 0 {
		return nil, ErrNoDelays
	}

	delays := append([]time.Duration(nil), t.Delays...)
	sort.Slice(delays, func(i, j int) bool { return delays[i] < delays[j] })

	exchange := rabbitmq.NewExchange(t.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	readyQ, err := qm.DeclareQueue(t.ReadyQueue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare ready queue: %w", err)
	}

	for _, d := range delays {
		name := DelayQueueName(t.DelayPrefix, d)

		args := map[string]interface{}{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": readyQ.Name,
			"x-message-ttl":             int32(d.Milliseconds()),
		}

		delayQ, err := qm.DeclareQueue(name, rabbitmq.QueueConfig{
			Durable: true,
			Args:    args,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to declare delay queue %s: %w", name, err)
		}

		if err := ch.QueueBind(delayQ.Name, name, exchange.Name(), false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind delay queue %s: %w", name, err)
		}
	}

	return &RetryQueue{
		publisher: rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:  rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(readyQ.Name)),
		prefix:    t.DelayPrefix,
		delays:    delays,
		strategy:  strategy,
	}, nil
}

// pickDelay returns the shortest declared delay not below d, or the longest
// one when d exceeds them all. delays must be sorted.
func pickDelay(delays []time.Duration, d time.Duration) time.Duration {
	i := sort.Search(len(delays), func(i int) bool { return delays[i] >= d })
	if i == len(delays) {
		i--
	}

	return delays[i]
}

// Schedule parks event in the delay queue closest to delay.
func (q *RetryQueue) Schedule(ctx context.Context, event model.NotificationEvent, delay time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := DelayQueueName(q.prefix, pickDelay(q.delays, delay))

	if err := q.publisher.PublishWithRetry(body, key, "application/json", q.strategy); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", key, err)
	}

	return nil
}

// Consume streams events whose delay has elapsed into out. It blocks while
// the consumer is running.
func (q *RetryQueue) Consume(out chan<- model.NotificationEvent) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var event model.NotificationEvent
			if err := json.Unmarshal(m, &event); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal retry message")
				continue
			}

			out <- event
		}
	}()

	return q.consumer.ConsumeWithRetry(msgChan, q.strategy)
}
