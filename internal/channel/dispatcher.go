package channel

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/breaker"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

type route struct {
	channel Channel
	breaker *breaker.Breaker
}

// Dispatcher resolves a channel by name and calls it through that channel's
// own circuit breaker. The routing table is fixed at construction.
type Dispatcher struct {
	routes map[model.Channel]route
}

// NewDispatcher registers the channels, each with a fresh breaker built from
// cfg. A later channel with the same name replaces an earlier one.
func NewDispatcher(cfg breaker.Config, channels []Channel, opts ...breaker.Option) *Dispatcher {
	routes := make(map[model.Channel]route, len(channels))

	for _, ch := range channels {
		name := ch.Name().Normalize()
		routes[name] = route{
			channel: ch,
			breaker: breaker.New(string(name), cfg, opts...),
		}
	}

	return &Dispatcher{routes: routes}
}

// Supports reports whether a channel with this name is registered.
func (d *Dispatcher) Supports(name model.Channel) bool {
	_, ok := d.routes[name.Normalize()]
	return ok
}

// Breaker returns the breaker guarding the named channel.
func (d *Dispatcher) Breaker(name model.Channel) (*breaker.Breaker, error) {
	r, ok := d.routes[name.Normalize()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedChannel, name)
	}

	return r.breaker, nil
}

// States reports the breaker state of every registered channel.
func (d *Dispatcher) States() map[model.Channel]breaker.State {
	out := make(map[model.Channel]breaker.State, len(d.routes))
	for name, r := range d.routes {
		out[name] = r.breaker.State()
	}

	return out
}

// Dispatch delivers req on its channel. It never panics and never returns
// an error: every failure is reported in the result.
func (d *Dispatcher) Dispatch(ctx context.Context, req model.DeliveryRequest) (res model.DeliveryResult) {
	name := req.Channel.Normalize()

	r, ok := d.routes[name]
	if !ok {
		return model.Failed(name, fmt.Errorf("%w: %s", ErrUnsupportedChannel, req.Channel))
	}

	if !r.breaker.Allow() {
		zlog.Logger.Warn().
			Str("notification_id", req.NotificationID).
			Str("channel", string(name)).
			Msg("circuit breaker open, delivery short-circuited")

		res = model.Failed(name, ErrBreakerOpen)
		res.Message = "Channel temporarily unavailable"
		return res
	}

	defer func() {
		if p := recover(); p != nil {
			zlog.Logger.Error().
				Str("notification_id", req.NotificationID).
				Str("channel", string(name)).
				Msgf("channel panicked: %v", p)

			r.breaker.RecordFailure()
			res = model.Failed(name, fmt.Errorf("channel %s panicked: %v", name, p))
		}
	}()

	req.Channel = name
	res = r.channel.Deliver(ctx, req)
	res.Channel = name

	switch {
	case res.Success:
		r.breaker.RecordSuccess()
	case IsPermanent(res.Err):
		r.breaker.Release()
	default:
		r.breaker.RecordFailure()
	}

	return res
}
