package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

const defaultSubject = "Notification"

type Client struct {
	dialer *mail.Dialer
	from   string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	dialer := mail.NewDialer(smtpHost, smtpPort, username, password)
	dialer.Timeout = 10 * time.Second

	return &Client{
		dialer: dialer,
		from:   from,
	}
}

// Message builds the outgoing mail. Exposed for tests.
func (c *Client) Message(to, subject, body string) *mail.Message {
	if subject == "" {
		subject = defaultSubject
	}

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	return message
}

func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.dialer.DialAndSend(c.Message(to, subject, body)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
