// Package channel holds the delivery channels and the dispatcher that routes
// requests to them behind per-channel circuit breakers.
package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

var (
	ErrUnsupportedChannel = errors.New("unsupported channel")
	ErrBreakerOpen        = errors.New("circuit breaker open")
	ErrNoRecipient        = errors.New("no recipient for channel")
	ErrInvalidPayload     = errors.New("invalid notification payload")
)

// Channel delivers a single request. Implementations report failures in the
// result rather than panicking or returning errors.
type Channel interface {
	Name() model.Channel
	Deliver(ctx context.Context, req model.DeliveryRequest) model.DeliveryResult
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as one that retrying cannot fix.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

// IsPermanent reports whether a failed delivery should not be retried.
func IsPermanent(err error) bool {
	var pe *permanentError
	if errors.As(err, &pe) {
		return true
	}

	return errors.Is(err, ErrUnsupportedChannel) ||
		errors.Is(err, ErrNoRecipient) ||
		errors.Is(err, ErrInvalidPayload)
}

// decodePayload parses the serialized key/value data of a request.
func decodePayload(raw string) (map[string]any, error) {
	data := map[string]any{}
	if raw == "" {
		return data, nil
	}

	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return data, nil
}

// stringField returns data[key] when it is a non-empty string.
func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}
