// Package topic wraps the partitioned event log: a publisher for the input,
// output and dead-letter topics and a manually committed group consumer.
package topic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

// Topics names the topics the pipeline writes to.
type Topics struct {
	Input  string
	Output string
	DLQ    string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes JSON messages keyed by notification id, so every message
// for a notification lands on the same partition.
type Publisher struct {
	writer   messageWriter
	topics   Topics
	strategy retry.Strategy
}

// NewPublisher creates a Publisher connected to brokers.
func NewPublisher(brokers []string, topics Topics, strategy retry.Strategy) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}

	return newPublisher(w, topics, strategy)
}

func newPublisher(w messageWriter, topics Topics, strategy retry.Strategy) *Publisher {
	return &Publisher{writer: w, topics: topics, strategy: strategy}
}

// PublishEvent writes a notification event to the input topic.
func (p *Publisher) PublishEvent(ctx context.Context, event model.NotificationEvent) error {
	return p.publish(ctx, p.topics.Input, event.NotificationID, event)
}

// PublishProcessed writes a terminal outcome to the output topic.
func (p *Publisher) PublishProcessed(ctx context.Context, event model.ProcessedEvent) error {
	return p.publish(ctx, p.topics.Output, event.NotificationID, event)
}

// PublishDeadLetter writes an exhausted notification to the dead-letter topic.
func (p *Publisher) PublishDeadLetter(ctx context.Context, letter model.DeadLetter) error {
	return p.publish(ctx, p.topics.DLQ, letter.Event.NotificationID, letter)
}

func (p *Publisher) publish(ctx context.Context, topic, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message for %s: %w", topic, err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: body,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}

	err = retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return p.writer.WriteMessages(ctx, msg)
		}
	}, p.strategy)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	return nil
}

// Close flushes pending writes and releases the connection.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
