package status

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/api/respond"
)

type subscriber interface {
	Subscribe(ctx context.Context, userID string) *redis.PubSub
}

// Handler streams status messages to HTTP clients as server-sent events.
type Handler struct {
	subs subscriber
}

func NewHandler(s subscriber) *Handler {
	return &Handler{subs: s}
}

// Stream handles GET /api/status/stream?userId=. Without userId the shared
// and metrics destinations are streamed.
func (h *Handler) Stream(c *ginext.Context) {
	ctx := c.Request.Context()
	userID := c.Query("userId")

	sub := h.subs.Subscribe(ctx, userID)
	defer func() {
		if err := sub.Close(); err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to close subscription")
		}
	}()

	if _, err := sub.Receive(ctx); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to subscribe to status updates")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	msgs := sub.Channel()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case m, ok := <-msgs:
			if !ok {
				return false
			}
			c.SSEvent("status", m.Payload)
			return true
		}
	})
}
