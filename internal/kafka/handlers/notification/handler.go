package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/metrics"
	"github.com/aliskhannn/notification-pipeline/internal/model"
	"github.com/aliskhannn/notification-pipeline/internal/service/pipeline"
)

var ErrMalformedEvent = errors.New("malformed notification event")

//go:generate mockgen -source=handler.go -destination=../../../mocks/kafka/handlers/notification/mock.go -package=mocks
type eventProcessor interface {
	Process(ctx context.Context, event model.NotificationEvent) pipeline.Outcome
}

// Handler decodes input messages and runs them through the pipeline.
type Handler struct {
	processor eventProcessor
	validate  *validator.Validate
}

func NewHandler(p eventProcessor) *Handler {
	return &Handler{
		processor: p,
		validate:  validator.New(),
	}
}

// Decode parses and validates a message body.
func (h *Handler) Decode(value []byte) (model.NotificationEvent, error) {
	var event model.NotificationEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return model.NotificationEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	if err := h.validate.Struct(event); err != nil {
		return model.NotificationEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	return event, nil
}

// HandleMessage processes one message. Malformed messages are reported and
// must be acknowledged by the caller, since retrying cannot fix them.
func (h *Handler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	event, err := h.Decode(msg.Value)
	if err != nil {
		metrics.RecordMalformed()
		zlog.Logger.Error().Err(err).
			Str("key", string(msg.Key)).
			Int("partition", msg.Partition).
			Int64("offset", msg.Offset).
			Msg("dropping malformed event")
		return err
	}

	outcome := h.processor.Process(ctx, event)

	zlog.Logger.Debug().
		Str("notification_id", event.NotificationID).
		Str("outcome", string(outcome)).
		Msg("processing pass finished")

	return nil
}
