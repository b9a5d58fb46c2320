package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the outcome of one channel attempt.
type DeliveryStatus string

const (
	DeliveryDelivered   DeliveryStatus = "DELIVERED"
	DeliveryFailed      DeliveryStatus = "FAILED"
	DeliveryRateLimited DeliveryStatus = "RATE_LIMITED"
)

// DeliveryRequest is handed to a channel for a single send.
type DeliveryRequest struct {
	NotificationID string
	UserID         string
	Channel        Channel
	TemplateID     string
	Data           string
	EventType      string
}

// NewDeliveryRequest builds the request for one channel of the event.
func NewDeliveryRequest(e NotificationEvent, ch Channel) DeliveryRequest {
	return DeliveryRequest{
		NotificationID: e.NotificationID,
		UserID:         e.UserID,
		Channel:        ch,
		TemplateID:     e.TemplateID,
		Data:           e.Data,
		EventType:      e.EventType,
	}
}

// DeliveryResult is what a channel reports back. Err keeps the cause for
// classification and is never serialized.
type DeliveryResult struct {
	Success     bool    `json:"success"`
	Channel     Channel `json:"channel"`
	Message     string  `json:"message,omitempty"`
	ErrorDetail string  `json:"errorDetail,omitempty"`
	Err         error   `json:"-"`
}

// Delivered reports a successful send.
func Delivered(ch Channel, message string) DeliveryResult {
	return DeliveryResult{Success: true, Channel: ch, Message: message}
}

// Failed reports a failed send caused by err.
func Failed(ch Channel, err error) DeliveryResult {
	return DeliveryResult{Channel: ch, ErrorDetail: err.Error(), Err: err}
}

// DeliveryLogEntry is one append-only row of the delivery audit trail.
type DeliveryLogEntry struct {
	ID             uuid.UUID      `json:"id"`
	NotificationID string         `json:"notification_id"`
	Channel        Channel        `json:"channel"`
	Status         DeliveryStatus `json:"status"`
	AttemptCount   int            `json:"attempt_count"`
	ErrorMessage   *string        `json:"error_message,omitempty"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Status message types.
const (
	MessageDeliveryStatus = "DELIVERY_STATUS"
	MessageMetrics        = "METRICS"
)

// StatusMessage is broadcast for every delivery attempt and for metrics ticks.
type StatusMessage struct {
	Type           string         `json:"type"`
	NotificationID string         `json:"notificationId,omitempty"`
	UserID         string         `json:"userId,omitempty"`
	Channel        Channel        `json:"channel,omitempty"`
	Status         DeliveryStatus `json:"status,omitempty"`
	EventType      string         `json:"eventType,omitempty"`
	Priority       Priority       `json:"priority,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
	DeliveryTimeMs *int64         `json:"deliveryTimeMs,omitempty"`
	Data           any            `json:"data,omitempty"`
}
