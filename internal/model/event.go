package model

import (
	"strings"
	"time"
)

// Priority is the urgency class of a notification.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Channel names a delivery capability.
type Channel string

const (
	ChannelEmail   Channel = "EMAIL"
	ChannelSMS     Channel = "SMS"
	ChannelPush    Channel = "PUSH"
	ChannelWebhook Channel = "WEBHOOK"
)

// AllChannels returns every supported channel in canonical order.
func AllChannels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS, ChannelPush, ChannelWebhook}
}

// Normalize upper-cases a channel name so lookups are case-insensitive.
func (c Channel) Normalize() Channel {
	return Channel(strings.ToUpper(strings.TrimSpace(string(c))))
}

// NotificationEvent is the message carried on the input topic.
type NotificationEvent struct {
	NotificationID string     `json:"notificationId" validate:"required"`
	UserID         string     `json:"userId" validate:"required"`
	EventType      string     `json:"eventType" validate:"required"`
	Priority       Priority   `json:"priority" validate:"required"`
	Channels       []Channel  `json:"channels" validate:"required,min=1,dive,required"`
	TemplateID     string     `json:"templateId,omitempty"`
	Data           string     `json:"data,omitempty"` // serialized key/value payload
	ScheduledAt    *time.Time `json:"scheduledAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	RetryCount     int        `json:"retryCount" validate:"gte=0"`
}

// WithChannels returns a copy of the event carrying only the given channels.
// The original event keeps its own channel slice.
func (e NotificationEvent) WithChannels(channels []Channel) NotificationEvent {
	e.Channels = append([]Channel(nil), channels...)
	return e
}

// WithRetryCount returns a copy of the event with the retry counter replaced.
func (e NotificationEvent) WithRetryCount(n int) NotificationEvent {
	e.Channels = append([]Channel(nil), e.Channels...)
	e.RetryCount = n
	return e
}

// ProcessingStatus is the terminal outcome of a processing pass.
type ProcessingStatus string

const (
	StatusProcessed ProcessingStatus = "PROCESSED"
	StatusFiltered  ProcessingStatus = "FILTERED"
	StatusFailed    ProcessingStatus = "FAILED"
)

// ProcessedEvent is published to the output topic once per terminal outcome.
type ProcessedEvent struct {
	NotificationID  string           `json:"notificationId"`
	UserID          string           `json:"userId"`
	EventType       string           `json:"eventType"`
	Priority        Priority         `json:"priority"`
	Channels        []Channel        `json:"channels"`
	TemplateID      string           `json:"templateId,omitempty"`
	Data            string           `json:"data,omitempty"`
	RetryCount      int              `json:"retryCount"`
	ProcessedAt     time.Time        `json:"processedAt"`
	Status          ProcessingStatus `json:"status"`
	ProcessingNotes string           `json:"processingNotes"`
}

// NewProcessedEvent derives a processed record from the event.
func NewProcessedEvent(e NotificationEvent, status ProcessingStatus, notes string, at time.Time) ProcessedEvent {
	return ProcessedEvent{
		NotificationID:  e.NotificationID,
		UserID:          e.UserID,
		EventType:       e.EventType,
		Priority:        e.Priority,
		Channels:        append([]Channel(nil), e.Channels...),
		TemplateID:      e.TemplateID,
		Data:            e.Data,
		RetryCount:      e.RetryCount,
		ProcessedAt:     at,
		Status:          status,
		ProcessingNotes: notes,
	}
}

// DeadLetter is what lands on the DLQ topic once retries are exhausted.
type DeadLetter struct {
	Event      NotificationEvent `json:"event"`
	Reason     string            `json:"reason"`
	RetryCount int               `json:"retryCount"`
	FailedAt   time.Time         `json:"failedAt"`
}
