package breaker

import (
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// Listener observes state transitions.
type Listener func(name string, from, to State)

// Option configures a Breaker.
type Option func(*Breaker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(b *Breaker) {
		b.now = now
	}
}

// WithListener registers a transition callback. It runs outside the lock.
func WithListener(l Listener) Option {
	return func(b *Breaker) {
		b.listener = l
	}
}

// Breaker guards one downstream. Safe for concurrent use.
type Breaker struct {
	name     string
	cfg      Config
	now      func() time.Time
	listener Listener

	mu   sync.Mutex
	snap Snapshot
}

// New creates a closed breaker.
func New(name string, cfg Config, opts ...Option) *Breaker {
	b := &Breaker{
		name: name,
		cfg:  cfg.withDefaults(),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Name returns the guarded downstream name.
func (b *Breaker) Name() string {
	return b.name
}

// Allow reports whether a call may proceed. A true result must be followed
// by RecordSuccess, RecordFailure or Release.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	prev := b.snap.State
	next, ok := Admit(b.snap, b.cfg, b.now())
	b.snap = next
	b.mu.Unlock()

	b.notify(prev, next.State)
	return ok
}

// RecordSuccess closes the circuit and clears the failure count.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	prev := b.snap.State
	b.snap = OnSuccess(b.snap)
	b.mu.Unlock()

	b.notify(prev, Closed)
}

// RecordFailure counts a failure and may open the circuit.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	prev := b.snap.State
	b.snap = OnFailure(b.snap, b.cfg, b.now())
	next := b.snap.State
	b.mu.Unlock()

	b.notify(prev, next)
}

// Release ends an admitted call without counting it either way.
func (b *Breaker) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.snap = OnRelease(b.snap)
}

// State returns the current state without side effects.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snap.State
}

// Snapshot returns a copy of the internal state.
func (b *Breaker) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snap
}

func (b *Breaker) notify(from, to State) {
	if from == to {
		return
	}

	zlog.Logger.Warn().
		Str("breaker", b.name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("circuit breaker state changed")

	if b.listener != nil {
		b.listener(b.name, from, to)
	}
}
