// Package breaker implements a per-channel circuit breaker as a plain state
// snapshot plus pure transition functions, wrapped by a concurrency-safe Breaker.
package breaker

import "time"

// State is the circuit state.
type State int

const (
	// Closed lets every call through.
	Closed State = iota
	// Open rejects calls until the cooldown elapses.
	Open
	// HalfOpen lets a single trial call through.
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "CLOSED"
	case Open:
		return "OPEN"
	case HalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds breaker thresholds.
type Config struct {
	FailureThreshold int           // consecutive failures that open the circuit
	Cooldown         time.Duration // time spent open before a trial is allowed
}

func (c Config) withDefaults() Config {
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 5
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 30 * time.Second
	}

	return c
}

// Snapshot is the complete breaker state.
type Snapshot struct {
	State    State
	Failures int
	OpenedAt time.Time
	Trial    bool // a half-open trial call is in flight
}

// Admit decides whether a call may proceed at now and returns the next state.
func Admit(s Snapshot, cfg Config, now time.Time) (Snapshot, bool) {
	switch s.State {
	case Closed:
		return s, true
	case Open:
		if now.Sub(s.OpenedAt) < cfg.Cooldown {
			return s, false
		}
		s.State = HalfOpen
		s.Trial = true
		return s, true
	case HalfOpen:
		if s.Trial {
			return s, false
		}
		s.Trial = true
		return s, true
	default:
		return s, false
	}
}

// OnSuccess applies a successful call.
func OnSuccess(_ Snapshot) Snapshot {
	return Snapshot{State: Closed}
}

// OnFailure applies a failed call at now.
func OnFailure(s Snapshot, cfg Config, now time.Time) Snapshot {
	switch s.State {
	case HalfOpen, Open:
		return Snapshot{State: Open, Failures: s.Failures, OpenedAt: now}
	default:
		s.Failures++
		if s.Failures >= cfg.FailureThreshold {
			return Snapshot{State: Open, Failures: s.Failures, OpenedAt: now}
		}
		return s
	}
}

// OnRelease ends a call that says nothing about downstream health. A
// half-open trial slot is freed without changing state.
func OnRelease(s Snapshot) Snapshot {
	s.Trial = false
	return s
}
