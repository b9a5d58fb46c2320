package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/retry"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads one topic as part of a consumer group. Offsets are only
// committed through Commit.
type Consumer struct {
	reader   messageReader
	strategy retry.Strategy
}

// NewConsumer joins groupID on topic.
func NewConsumer(brokers []string, topic, groupID string, strategy retry.Strategy) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        500 * time.Millisecond,
		CommitInterval: 0,
		StartOffset:    kafka.FirstOffset,
	})

	return newConsumer(r, strategy)
}

func newConsumer(r messageReader, strategy retry.Strategy) *Consumer {
	return &Consumer{reader: r, strategy: strategy}
}

// Fetch blocks until a message is available or ctx is done.
func (c *Consumer) Fetch(ctx context.Context) (kafka.Message, error) {
	msg, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("fetch message: %w", err)
	}

	return msg, nil
}

// Commit acknowledges msg, retrying transient broker errors.
func (c *Consumer) Commit(ctx context.Context, msg kafka.Message) error {
	err := retry.Do(func() error {
		return c.reader.CommitMessages(ctx, msg)
	}, c.strategy)
	if err != nil {
		return fmt.Errorf("commit offset %d on partition %d: %w", msg.Offset, msg.Partition, err)
	}

	return nil
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
