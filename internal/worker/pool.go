package worker

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/zlog"
)

// fetchBackoff is the pause after a failed fetch.
const fetchBackoff = time.Second

//go:generate mockgen -source=pool.go -destination=../mocks/worker/mock.go -package=mocks
type messageSource interface {
	Fetch(ctx context.Context) (kafka.Message, error)
	Commit(ctx context.Context, msg kafka.Message) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg kafka.Message) error
}

// Pool fans input messages out to a fixed number of lanes. Each partition is
// pinned to one lane, so messages of a partition are handled one at a time and
// in offset order.
type Pool struct {
	source  messageSource
	handler messageHandler
	lanes   int
}

func NewPool(s messageSource, h messageHandler, lanes int) *Pool {
	if lanes < 1 {
		lanes = 1
	}

	return &Pool{
		source:  s,
		handler: h,
		lanes:   lanes,
	}
}

// Run fetches until ctx is done, then waits for the lanes to drain.
// A message already handed to a lane is finished and committed even after
// cancellation.
func (p *Pool) Run(ctx context.Context) {
	lanes := make([]chan kafka.Message, p.lanes)
	done := make(chan struct{}, p.lanes)

	for i := range lanes {
		lanes[i] = make(chan kafka.Message)

		go func(id int, in <-chan kafka.Message) {
			zlog.Logger.Printf("worker-%d started", id)

			for msg := range in {
				p.handle(ctx, msg)
			}

			zlog.Logger.Printf("worker-%d shutting down", id)
			done <- struct{}{}
		}(i, lanes[i])
	}

loop:
	for {
		msg, err := p.source.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}

			zlog.Logger.Error().Err(err).Msg("failed to fetch message")

			select {
			case <-ctx.Done():
				break loop
			case <-time.After(fetchBackoff):
			}

			continue
		}

		select {
		case lanes[p.lane(msg.Partition)] <- msg:
		case <-ctx.Done():
			break loop
		}
	}

	for _, l := range lanes {
		close(l)
	}

	for range lanes {
		<-done
	}

	zlog.Logger.Print("worker pool stopped")
}

func (p *Pool) lane(partition int) int {
	if partition < 0 {
		partition = -partition
	}

	return partition % p.lanes
}

// handle runs one processing pass and commits the offset whatever its result.
// A failed pass has already been escalated or is malformed, so redelivering it
// would only duplicate work.
func (p *Pool) handle(ctx context.Context, msg kafka.Message) {
	ctx = context.WithoutCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().
				Interface("panic", r).
				Int("partition", msg.Partition).
				Int64("offset", msg.Offset).
				Msg("handler panicked")
		}

		if err := p.source.Commit(ctx, msg); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to commit message")
		}
	}()

	if err := p.handler.HandleMessage(ctx, msg); err != nil {
		zlog.Logger.Warn().Err(err).
			Int("partition", msg.Partition).
			Int64("offset", msg.Offset).
			Msg("message handled with error")
	}
}
