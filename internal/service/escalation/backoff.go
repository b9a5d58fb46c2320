package escalation

import (
	"math"
	"time"
)

// Backoff computes exponential retry delays capped at Max.
type Backoff struct {
	Initial    time.Duration
	Multiplier float64
	Max        time.Duration
}

// Delay returns the wait before retry attempt n, counted from 1:
// min(Initial * Multiplier^(n-1), Max).
func (b Backoff) Delay(n int) time.Duration {
	if n < 1 {
		n = 1
	}

	mult := b.Multiplier
	if mult < 1 {
		mult = 1
	}

	d := float64(b.Initial) * math.Pow(mult, float64(n-1))
	if b.Max > 0 && (d > float64(b.Max) || math.IsInf(d, 0) || math.IsNaN(d)) {
		return b.Max
	}
	if d > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(d)
}

// Delays lists the distinct waits used before retries 1..maxAttempts-1, in
// ascending order.
func (b Backoff) Delays(maxAttempts int) []time.Duration {
	var out []time.Duration

	for n := 1; n < maxAttempts; n++ {
		d := b.Delay(n)
		if len(out) > 0 && out[len(out)-1] == d {
			continue
		}
		out = append(out, d)
	}

	return out
}
