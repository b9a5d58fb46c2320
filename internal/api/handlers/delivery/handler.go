package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/api/dto"
	"github.com/aliskhannn/notification-pipeline/internal/api/respond"
	"github.com/aliskhannn/notification-pipeline/internal/model"
	"github.com/aliskhannn/notification-pipeline/internal/repository/deliverylog"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/delivery/mock.go -package=mocks
type logReader interface {
	ListByNotificationID(ctx context.Context, notificationID string) ([]model.DeliveryLogEntry, error)
}

type retryCounter interface {
	RetryCount(ctx context.Context, notificationID string) (int64, error)
}

// Handler serves the delivery history of notifications.
type Handler struct {
	logs    logReader
	retries retryCounter
}

func NewHandler(l logReader, r retryCounter) *Handler {
	return &Handler{logs: l, retries: r}
}

// Get handles GET /api/deliveries/:id.
func (h *Handler) Get(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	entries, err := h.logs.ListByNotificationID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, deliverylog.ErrNoDeliveryLogs) {
			zlog.Logger.Warn().Str("notification_id", id).Msg("no delivery logs")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no deliveries for notification"))
			return
		}

		zlog.Logger.Error().Err(err).Str("notification_id", id).Msg("failed to list delivery logs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	// The counter is informational; a lookup failure still returns the log.
	retries, err := h.retries.RetryCount(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("notification_id", id).Msg("failed to read retry counter")
	}

	respond.OK(c.Writer, dto.DeliveryResponse{
		NotificationID: id,
		RetryCount:     retries,
		Entries:        entries,
	})
}
