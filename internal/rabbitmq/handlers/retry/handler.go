package retry

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/retry/mock.go -package=mocks
type readyQueue interface {
	Consume(out chan<- model.NotificationEvent) error
}

type eventPublisher interface {
	PublishEvent(ctx context.Context, event model.NotificationEvent) error
}

// Relay moves events whose retry delay has elapsed back onto the input topic.
type Relay struct {
	queue     readyQueue
	publisher eventPublisher
}

func NewRelay(q readyQueue, p eventPublisher) *Relay {
	return &Relay{
		queue:     q,
		publisher: p,
	}
}

// Run relays events until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	events := make(chan model.NotificationEvent)

	go func() {
		if err := r.queue.Consume(events); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume retry queue")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("retry relay stopped")
			return
		case event := <-events:
			r.HandleMessage(ctx, event)
		}
	}
}

// HandleMessage re-publishes a single event.
func (r *Relay) HandleMessage(ctx context.Context, event model.NotificationEvent) {
	if err := r.publisher.PublishEvent(context.WithoutCancel(ctx), event); err != nil {
		zlog.Logger.Error().Err(err).
			Str("notification_id", event.NotificationID).
			Int("retry_count", event.RetryCount).
			Msg("failed to relay retry event")
		return
	}

	zlog.Logger.Debug().
		Str("notification_id", event.NotificationID).
		Int("retry_count", event.RetryCount).
		Msg("retry event relayed")
}
