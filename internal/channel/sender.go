package channel

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

//go:generate mockgen -source=sender.go -destination=../mocks/channel/mock.go -package=mocks
type sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Payload keys read by the sender-backed channels.
const (
	KeyEmail   = "email"
	KeyPhone   = "phone"
	KeyChatID  = "chatId"
	KeySubject = "subject"
	KeyMessage = "message"
)

// SenderChannel delivers through a provider client that takes a recipient
// address read from the payload.
type SenderChannel struct {
	name         model.Channel
	recipientKey string
	fallback     string
	sender       sender
}

// NewEmail returns the EMAIL channel.
func NewEmail(s sender) *SenderChannel {
	return &SenderChannel{name: model.ChannelEmail, recipientKey: KeyEmail, sender: s}
}

// NewSMS returns the SMS channel.
func NewSMS(s sender) *SenderChannel {
	return &SenderChannel{name: model.ChannelSMS, recipientKey: KeyPhone, sender: s}
}

// NewPush returns the PUSH channel. defaultChatID is used when the payload
// carries no chat id.
func NewPush(s sender, defaultChatID string) *SenderChannel {
	return &SenderChannel{name: model.ChannelPush, recipientKey: KeyChatID, fallback: defaultChatID, sender: s}
}

func (c *SenderChannel) Name() model.Channel {
	return c.name
}

func (c *SenderChannel) Deliver(ctx context.Context, req model.DeliveryRequest) model.DeliveryResult {
	data, err := decodePayload(req.Data)
	if err != nil {
		return model.Failed(c.name, err)
	}

	to := stringField(data, c.recipientKey)
	if to == "" {
		to = c.fallback
	}
	if to == "" {
		return model.Failed(c.name, fmt.Errorf("%w: %s missing %q", ErrNoRecipient, c.name, c.recipientKey))
	}

	subject, body := compose(req, data)

	if err := c.sender.Send(ctx, to, subject, body); err != nil {
		return model.Failed(c.name, fmt.Errorf("%s send: %w", c.name, err))
	}

	return model.Delivered(c.name, fmt.Sprintf("%s sent to %s", c.name, to))
}

// compose picks the subject and body from the payload, falling back to the
// event type and template id.
func compose(req model.DeliveryRequest, data map[string]any) (string, string) {
	subject := stringField(data, KeySubject)
	if subject == "" {
		subject = req.EventType
	}

	body := stringField(data, KeyMessage)
	if body == "" {
		body = fmt.Sprintf("You have a new %s notification", req.EventType)
		if req.TemplateID != "" {
			body += fmt.Sprintf(" (template %s)", req.TemplateID)
		}
	}

	return subject, body
}

// LogSender is a provider stand-in that only logs the message. Used for SMS
// until a gateway is configured.
type LogSender struct {
	Provider string
}

func (s LogSender) Send(_ context.Context, to, subject, body string) error {
	zlog.Logger.Info().
		Str("provider", s.Provider).
		Str("to", to).
		Str("subject", subject).
		Msg(body)

	return nil
}
