// Package pipeline runs one processing pass of a notification event.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/channel"
	"github.com/aliskhannn/notification-pipeline/internal/metrics"
	"github.com/aliskhannn/notification-pipeline/internal/model"
	"github.com/aliskhannn/notification-pipeline/internal/service/escalation"
	"github.com/aliskhannn/notification-pipeline/internal/service/preference"
	"github.com/aliskhannn/notification-pipeline/internal/service/status"
)

//go:generate mockgen -source=processor.go -destination=../../mocks/service/pipeline/mock.go -package=mocks
type idempotencyGuard interface {
	IsProcessed(ctx context.Context, notificationID string) bool
	MarkProcessed(ctx context.Context, notificationID string) error
}

type preferenceResolver interface {
	Resolve(ctx context.Context, userID string) model.UserPreferences
}

type rateLimiter interface {
	Allow(ctx context.Context, userID string, ch model.Channel) (bool, error)
}

type channelDispatcher interface {
	Supports(ch model.Channel) bool
	Dispatch(ctx context.Context, req model.DeliveryRequest) model.DeliveryResult
}

type attemptRecorder interface {
	Record(ctx context.Context, a status.Attempt)
}

type retryEscalator interface {
	Escalate(ctx context.Context, event model.NotificationEvent, cause error) (escalation.Decision, error)
}

type outputPublisher interface {
	PublishProcessed(ctx context.Context, event model.ProcessedEvent) error
}

// Outcome is the result of one processing pass.
type Outcome string

const (
	OutcomeDuplicate    Outcome = metrics.OutcomeDuplicate
	OutcomeFiltered     Outcome = metrics.OutcomeFiltered
	OutcomeProcessed    Outcome = metrics.OutcomeProcessed
	OutcomeRetrying     Outcome = metrics.OutcomeRetrying
	OutcomeDeadLettered Outcome = metrics.OutcomeDeadLettered
)

// Processor drives an event through idempotency, preference filtering,
// per-channel rate limiting and dispatch, recording and escalation.
type Processor struct {
	guard      idempotencyGuard
	prefs      preferenceResolver
	limiter    rateLimiter
	dispatcher channelDispatcher
	recorder   attemptRecorder
	escalator  retryEscalator
	output     outputPublisher
	now        func() time.Time
}

// NewProcessor wires a Processor.
func NewProcessor(
	guard idempotencyGuard,
	prefs preferenceResolver,
	limiter rateLimiter,
	dispatcher channelDispatcher,
	recorder attemptRecorder,
	escalator retryEscalator,
	output outputPublisher,
) *Processor {
	return &Processor{
		guard:      guard,
		prefs:      prefs,
		limiter:    limiter,
		dispatcher: dispatcher,
		recorder:   recorder,
		escalator:  escalator,
		output:     output,
		now:        time.Now,
	}
}

// channelOutcome is what happened on one channel during a pass.
type channelOutcome struct {
	channel   model.Channel
	status    model.DeliveryStatus
	err       error
	retryable bool
}

// Process runs one pass over event. It never returns an error: every failure
// ends in a terminal outcome or an escalation.
func (p *Processor) Process(ctx context.Context, event model.NotificationEvent) (outcome Outcome) {
	log := zlog.Logger.With().
		Str("notification_id", event.NotificationID).
		Str("user_id", event.UserID).
		Int("retry_count", event.RetryCount).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("processing panicked: %v", r)
			outcome = p.escalate(ctx, event, fmt.Errorf("processing panicked: %v", r))
		}
		metrics.RecordOutcome(string(outcome))
	}()

	if p.guard.IsProcessed(ctx, event.NotificationID) {
		log.Info().Msg("notification already processed, skipping")
		return OutcomeDuplicate
	}

	event = normalizePriority(event)

	prefs := p.prefs.Resolve(ctx, event.UserID)

	if preference.IsEventTypeBlocked(prefs, event.EventType) {
		log.Info().Str("event_type", event.EventType).Msg("event type blocked by user preferences")
		p.finish(ctx, event, model.StatusFiltered, "Event type blocked by user preferences")
		return OutcomeFiltered
	}

	channels := preference.FilterChannels(prefs, event.Channels)
	if len(channels) == 0 {
		log.Info().Msg("all requested channels disabled by user preferences")
		p.finish(ctx, event, model.StatusFiltered, "All channels disabled by user preferences")
		return OutcomeFiltered
	}

	filtered := event.WithChannels(channels)

	if filtered.Priority != model.PriorityHigh && preference.IsInQuietHours(prefs, p.now()) {
		log.Info().Str("priority", string(filtered.Priority)).Msg("notification falls in user quiet hours")
	}

	results := p.dispatchAll(ctx, filtered)

	var (
		retry     []model.Channel
		causes    []error
		delivered int
	)
	for _, r := range results {
		switch {
		case r.status == model.DeliveryDelivered:
			delivered++
		case r.retryable:
			retry = append(retry, r.channel)
			causes = append(causes, r.err)
		}
	}

	if len(retry) > 0 {
		return p.escalate(ctx, filtered.WithChannels(retry), errors.Join(causes...))
	}

	st := model.StatusProcessed
	if delivered == 0 && hasStatus(results, model.DeliveryFailed) {
		st = model.StatusFailed
	}

	p.finish(ctx, filtered, st, summarize(results))
	log.Info().Str("status", string(st)).Msg("notification processed")

	return OutcomeProcessed
}

// dispatchAll attempts every channel concurrently. Channels share nothing
// but the breaker each one owns.
func (p *Processor) dispatchAll(ctx context.Context, event model.NotificationEvent) []channelOutcome {
	results := make([]channelOutcome, len(event.Channels))

	var wg sync.WaitGroup
	for i, ch := range event.Channels {
		wg.Add(1)
		go func(i int, ch model.Channel) {
			defer wg.Done()
			results[i] = p.dispatchOne(ctx, event, ch)
		}(i, ch)
	}
	wg.Wait()

	return results
}

func (p *Processor) dispatchOne(ctx context.Context, event model.NotificationEvent, ch model.Channel) (out channelOutcome) {
	out.channel = ch
	attempt := status.Attempt{Event: event, Channel: ch}

	defer func() {
		if r := recover(); r != nil {
			out.status = model.DeliveryFailed
			out.err = fmt.Errorf("%s: panicked: %v", ch, r)
			out.retryable = true
			attempt.Status = out.status
			attempt.Result = model.Failed(ch, out.err)
		}
		p.recorder.Record(ctx, attempt)
	}()

	if !p.dispatcher.Supports(ch) {
		err := fmt.Errorf("%w: %s", channel.ErrUnsupportedChannel, ch)
		zlog.Logger.Error().Err(err).Str("notification_id", event.NotificationID).Msg("cannot deliver")

		out.status, out.err = model.DeliveryFailed, err
		attempt.Status, attempt.Result = out.status, model.Failed(ch, err)
		return out
	}

	allowed, err := p.limiter.Allow(ctx, event.UserID, ch)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("notification_id", event.NotificationID).Msg("rate limiter unavailable, allowing")
		allowed = true
	}
	if !allowed {
		zlog.Logger.Info().
			Str("notification_id", event.NotificationID).
			Str("user_id", event.UserID).
			Str("channel", string(ch)).
			Msg("rate limit exceeded")

		out.status = model.DeliveryRateLimited
		attempt.Status = out.status
		return out
	}

	start := p.now()
	res := p.dispatcher.Dispatch(ctx, model.NewDeliveryRequest(event, ch))
	attempt.Took = p.now().Sub(start)
	attempt.Result = res

	if res.Success {
		out.status = model.DeliveryDelivered
		zlog.Logger.Info().
			Str("notification_id", event.NotificationID).
			Str("channel", string(ch)).
			Msg(res.Message)
	} else {
		out.status = model.DeliveryFailed
		out.err = res.Err
		if out.err == nil {
			out.err = errors.New(res.ErrorDetail)
		}
		out.err = fmt.Errorf("%s: %w", ch, out.err)
		out.retryable = !channel.IsPermanent(res.Err)

		zlog.Logger.Warn().Err(out.err).
			Str("notification_id", event.NotificationID).
			Bool("retryable", out.retryable).
			Msg("delivery failed")
	}
	attempt.Status = out.status

	return out
}

// escalate hands event to the escalator and publishes the terminal record
// when it was dead-lettered.
func (p *Processor) escalate(ctx context.Context, event model.NotificationEvent, cause error) Outcome {
	decision, err := p.escalator.Escalate(ctx, event, cause)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", event.NotificationID).Msg("escalation failed")
	}

	if decision.Action == escalation.ActionDeadLetter {
		p.publish(ctx, event, model.StatusFailed, "Dead-lettered: "+decision.Reason)
		return OutcomeDeadLettered
	}

	return OutcomeRetrying
}

// finish marks the notification processed and publishes its terminal record.
func (p *Processor) finish(ctx context.Context, event model.NotificationEvent, st model.ProcessingStatus, notes string) {
	if err := p.guard.MarkProcessed(ctx, event.NotificationID); err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", event.NotificationID).Msg("failed to mark processed")
	}

	p.publish(ctx, event, st, notes)
}

func (p *Processor) publish(ctx context.Context, event model.NotificationEvent, st model.ProcessingStatus, notes string) {
	processed := model.NewProcessedEvent(event, st, notes, p.now().UTC())
	if err := p.output.PublishProcessed(ctx, processed); err != nil {
		zlog.Logger.Error().Err(err).Str("notification_id", event.NotificationID).Msg("failed to publish processed event")
	}
}

// normalizePriority maps unknown priorities to MEDIUM.
func normalizePriority(event model.NotificationEvent) model.NotificationEvent {
	prio := model.Priority(strings.ToUpper(strings.TrimSpace(string(event.Priority))))

	switch prio {
	case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
	default:
		zlog.Logger.Warn().
			Str("notification_id", event.NotificationID).
			Str("priority", string(event.Priority)).
			Msg("unknown priority, treating as MEDIUM")
		prio = model.PriorityMedium
	}

	event.Priority = prio
	return event
}

func hasStatus(results []channelOutcome, st model.DeliveryStatus) bool {
	for _, r := range results {
		if r.status == st {
			return true
		}
	}

	return false
}

// summarize renders the per-channel outcomes as processing notes.
func summarize(results []channelOutcome) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		part := fmt.Sprintf("%s=%s", r.channel, r.status)
		if r.err != nil {
			part += " (" + r.err.Error() + ")"
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "; ")
}
