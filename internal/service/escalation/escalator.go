package escalation

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

//go:generate mockgen -source=escalator.go -destination=../../mocks/service/escalation/mock.go -package=mocks
type retryTracker interface {
	IncrementRetry(ctx context.Context, notificationID string) (int64, error)
	MarkProcessed(ctx context.Context, notificationID string) error
}

// Scheduler re-publishes an event after a delay without blocking the caller.
type Scheduler interface {
	Schedule(ctx context.Context, event model.NotificationEvent, delay time.Duration) error
}

type deadLetterSink interface {
	PublishDeadLetter(ctx context.Context, letter model.DeadLetter) error
}

// Action is what the escalator did with a failed notification.
type Action string

const (
	ActionRetry      Action = "RETRY"
	ActionDeadLetter Action = "DEAD_LETTER"
)

// Decision describes the outcome of one escalation.
type Decision struct {
	Action  Action
	Attempt int           // retry count carried by the re-published event
	Delay   time.Duration // zero for dead letters
	Reason  string
}

// Escalator turns a failed processing pass into either a delayed retry or a
// dead letter.
type Escalator struct {
	tracker     retryTracker
	scheduler   Scheduler
	sink        deadLetterSink
	backoff     Backoff
	maxAttempts int
	now         func() time.Time
}

// NewEscalator creates an Escalator. maxAttempts below one is treated as one,
// so every failure dead-letters.
func NewEscalator(tracker retryTracker, sched Scheduler, sink deadLetterSink, backoff Backoff, maxAttempts int) *Escalator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Escalator{
		tracker:     tracker,
		scheduler:   sched,
		sink:        sink,
		backoff:     backoff,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Escalate handles a failed pass of event. The returned error is non-nil only
// when the dead letter itself could not be written.
func (e *Escalator) Escalate(ctx context.Context, event model.NotificationEvent, cause error) (Decision, error) {
	reason := "processing failed"
	if cause != nil {
		reason = cause.Error()
	}

	next := event.RetryCount + 1
	if next >= e.maxAttempts {
		return e.deadLetter(ctx, event, reason)
	}

	// The stored counter and the event field can diverge if scheduling fails
	// after this increment; the event field is authoritative for decisions.
	if _, err := e.tracker.IncrementRetry(ctx, event.NotificationID); err != nil {
		zlog.Logger.Warn().Err(err).Str("notification_id", event.NotificationID).Msg("failed to increment retry counter")
	}

	delay := e.backoff.Delay(next)
	if err := e.scheduler.Schedule(ctx, event.WithRetryCount(next), delay); err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", event.NotificationID).Msg("failed to schedule retry")
		return e.deadLetter(ctx, event, fmt.Sprintf("%s; schedule retry: %v", reason, err))
	}

	zlog.Logger.Info().
		Str("notification_id", event.NotificationID).
		Int("attempt", next).
		Dur("delay", delay).
		Msg("retry scheduled")

	return Decision{Action: ActionRetry, Attempt: next, Delay: delay, Reason: reason}, nil
}

func (e *Escalator) deadLetter(ctx context.Context, event model.NotificationEvent, reason string) (Decision, error) {
	decision := Decision{Action: ActionDeadLetter, Attempt: event.RetryCount, Reason: reason}

	letter := model.DeadLetter{
		Event:      event.WithChannels(event.Channels),
		Reason:     reason,
		RetryCount: event.RetryCount,
		FailedAt:   e.now().UTC(),
	}

	if err := e.sink.PublishDeadLetter(ctx, letter); err != nil {
		return decision, fmt.Errorf("publish dead letter %s: %w", event.NotificationID, err)
	}

	if err := e.tracker.MarkProcessed(ctx, event.NotificationID); err != nil {
		zlog.Logger.Warn().Err(err).Str("notification_id", event.NotificationID).Msg("failed to mark dead-lettered notification processed")
	}

	zlog.Logger.Warn().
		Str("notification_id", event.NotificationID).
		Int("retry_count", event.RetryCount).
		Str("reason", reason).
		Msg("notification dead-lettered")

	return decision, nil
}
