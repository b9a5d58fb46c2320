package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/api/dto"
	"github.com/aliskhannn/notification-pipeline/internal/api/respond"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

// eventPublisher puts ingested events on the input topic.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type eventPublisher interface {
	PublishEvent(ctx context.Context, event model.NotificationEvent) error
}

// Handler accepts notification requests and turns them into input events.
type Handler struct {
	publisher eventPublisher
	validator *validator.Validate
	now       func() time.Time
}

// NewHandler creates a new Handler instance.
func NewHandler(p eventPublisher, v *validator.Validate) *Handler {
	return &Handler{
		publisher: p,
		validator: v,
		now:       time.Now,
	}
}

// Create handles POST /api/notifications.
//
// One event with a fresh id is published per recipient. The response is
// 202 Accepted with the ids; delivery happens asynchronously.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	var data string
	if len(req.Data) > 0 {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid data"))
			return
		}
		data = string(raw)
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	ids := make([]string, 0, len(req.Recipients))
	createdAt := h.now().UTC()

	for _, r := range req.Recipients {
		channels := make([]model.Channel, 0, len(r.Channels))
		for _, ch := range r.Channels {
			channels = append(channels, ch.Normalize())
		}

		event := model.NotificationEvent{
			NotificationID: uuid.NewString(),
			UserID:         r.UserID,
			EventType:      req.EventType,
			Priority:       priority,
			Channels:       channels,
			TemplateID:     req.TemplateID,
			Data:           data,
			ScheduledAt:    req.ScheduledAt,
			CreatedAt:      createdAt,
		}

		if err := h.publisher.PublishEvent(c.Request.Context(), event); err != nil {
			zlog.Logger.Error().Err(err).
				Str("notification_id", event.NotificationID).
				Str("user_id", event.UserID).
				Msg("failed to publish notification event")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			return
		}

		ids = append(ids, event.NotificationID)
	}

	zlog.Logger.Info().Int("count", len(ids)).Str("event_type", req.EventType).Msg("notifications accepted")

	respond.Accepted(c.Writer, dto.CreateResponse{NotificationIDs: ids})
}
