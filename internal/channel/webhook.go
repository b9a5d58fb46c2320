package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

// KeyWebhookURL is the payload key holding the destination URL.
const KeyWebhookURL = "webhookUrl"

// webhookPayload is the JSON body posted to the destination.
type webhookPayload struct {
	NotificationID string         `json:"notificationId"`
	UserID         string         `json:"userId"`
	EventType      string         `json:"eventType"`
	Data           map[string]any `json:"data"`
	Timestamp      int64          `json:"timestamp"`
}

// Webhook posts the notification to a URL taken from the payload. Transient
// failures (network errors, 5xx, 429) are retried with its own strategy.
type Webhook struct {
	client   *http.Client
	strategy retry.Strategy
	now      func() time.Time
}

// NewWebhook creates the WEBHOOK channel.
func NewWebhook(timeout time.Duration, strategy retry.Strategy) *Webhook {
	return &Webhook{
		client:   &http.Client{Timeout: timeout},
		strategy: strategy,
		now:      time.Now,
	}
}

func (w *Webhook) Name() model.Channel {
	return model.ChannelWebhook
}

func (w *Webhook) Deliver(ctx context.Context, req model.DeliveryRequest) model.DeliveryResult {
	data, err := decodePayload(req.Data)
	if err != nil {
		return model.Failed(model.ChannelWebhook, err)
	}

	url := stringField(data, KeyWebhookURL)
	if url == "" {
		zlog.Logger.Info().Str("notification_id", req.NotificationID).Msg("no webhook URL provided, skipping")
		return model.Delivered(model.ChannelWebhook, "No webhook URL provided")
	}

	body, err := json.Marshal(webhookPayload{
		NotificationID: req.NotificationID,
		UserID:         req.UserID,
		EventType:      req.EventType,
		Data:           data,
		Timestamp:      w.now().UnixMilli(),
	})
	if err != nil {
		return model.Failed(model.ChannelWebhook, Permanent(fmt.Errorf("marshal webhook payload: %w", err)))
	}

	// retry.Do retries every error, so errors that must not be retried are
	// carried out of the closure and the attempt reports success to stop.
	var stop error
	err = retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			stop = err
			return nil
		}

		postErr := w.post(ctx, url, body)
		if postErr != nil && IsPermanent(postErr) {
			stop = postErr
			return nil
		}

		return postErr
	}, w.strategy)
	if stop != nil {
		err = stop
	}
	if err != nil {
		return model.Failed(model.ChannelWebhook, fmt.Errorf("webhook %s: %w", url, err))
	}

	return model.Delivered(model.ChannelWebhook, "Webhook delivered to "+url)
}

func (w *Webhook) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("webhook responded %s", resp.Status)
	default:
		return Permanent(fmt.Errorf("webhook responded %s", resp.Status))
	}
}
