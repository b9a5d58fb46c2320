package status

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/metrics"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

//go:generate mockgen -source=recorder.go -destination=../../mocks/service/status/mock.go -package=mocks
type logWriter interface {
	Insert(ctx context.Context, entry model.DeliveryLogEntry) error
}

type statusSender interface {
	SendToUser(ctx context.Context, userID string, msg model.StatusMessage) error
	SendToAll(ctx context.Context, msg model.StatusMessage) error
}

// Attempt is one channel attempt ready to be recorded.
type Attempt struct {
	Event   model.NotificationEvent
	Channel model.Channel
	Status  model.DeliveryStatus
	Result  model.DeliveryResult
	Took    time.Duration
}

// Recorder writes the delivery log and emits the status broadcast for every
// attempt. Each of the three writes is independent of the others.
type Recorder struct {
	logs   logWriter
	sender statusSender
	now    func() time.Time
}

// NewRecorder creates a Recorder.
func NewRecorder(logs logWriter, sender statusSender) *Recorder {
	return &Recorder{logs: logs, sender: sender, now: time.Now}
}

// Record persists and broadcasts a. Failures are logged, never returned.
func (r *Recorder) Record(ctx context.Context, a Attempt) {
	now := r.now().UTC()

	entry := model.DeliveryLogEntry{
		ID:             uuid.New(),
		NotificationID: a.Event.NotificationID,
		Channel:        a.Channel,
		Status:         a.Status,
		AttemptCount:   a.Event.RetryCount + 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	switch a.Status {
	case model.DeliveryDelivered:
		entry.DeliveredAt = &now
	case model.DeliveryRateLimited:
		msg := "Rate limit exceeded"
		entry.ErrorMessage = &msg
	default:
		if a.Result.ErrorDetail != "" {
			msg := a.Result.ErrorDetail
			entry.ErrorMessage = &msg
		}
	}

	if err := r.logs.Insert(ctx, entry); err != nil {
		zlog.Logger.Error().Err(err).
			Str("notification_id", entry.NotificationID).
			Str("channel", string(entry.Channel)).
			Msg("failed to write delivery log")
	}

	msg := model.StatusMessage{
		Type:           model.MessageDeliveryStatus,
		NotificationID: a.Event.NotificationID,
		UserID:         a.Event.UserID,
		Channel:        a.Channel,
		Status:         a.Status,
		EventType:      a.Event.EventType,
		Priority:       a.Event.Priority,
		Timestamp:      now,
	}
	if a.Status != model.DeliveryRateLimited {
		ms := a.Took.Milliseconds()
		msg.DeliveryTimeMs = &ms
	}

	if err := r.sender.SendToUser(ctx, a.Event.UserID, msg); err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", a.Event.UserID).Msg("failed to send user status")
	}

	if err := r.sender.SendToAll(ctx, msg); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to broadcast status")
	}

	metrics.RecordDelivery(a.Channel, a.Status, a.Took)
}
