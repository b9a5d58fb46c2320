package dto

import (
	"time"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

// Recipient is one addressee of an ingestion request.
type Recipient struct {
	UserID   string          `json:"userId" validate:"required"`
	Channels []model.Channel `json:"channels" validate:"required,min=1,dive,oneof=EMAIL SMS PUSH WEBHOOK email sms push webhook"`
}

// CreateRequest is the body of POST /api/notifications.
type CreateRequest struct {
	EventType   string         `json:"eventType" validate:"required"`
	Priority    model.Priority `json:"priority" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	TemplateID  string         `json:"templateId"`
	Data        map[string]any `json:"data"`
	ScheduledAt *time.Time     `json:"scheduledAt"`
	Recipients  []Recipient    `json:"recipients" validate:"required,min=1,dive"`
}

// CreateResponse lists the ids of the events that were published.
type CreateResponse struct {
	NotificationIDs []string `json:"notificationIds"`
}

// PreferencesRequest is the body of PUT /api/users/:id/preferences.
type PreferencesRequest struct {
	Channels          []model.Channel   `json:"channels" validate:"omitempty,dive,oneof=EMAIL SMS PUSH WEBHOOK email sms push webhook"`
	QuietHours        *model.QuietHours `json:"quietHours"`
	BlockedEventTypes []string          `json:"blockedEventTypes"`
}

// DeliveryResponse is the delivery history of one notification.
type DeliveryResponse struct {
	NotificationID string                   `json:"notificationId"`
	RetryCount     int64                    `json:"retryCount"`
	Entries        []model.DeliveryLogEntry `json:"entries"`
}
