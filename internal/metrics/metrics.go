// Package metrics exposes pipeline counters to Prometheus and keeps a cheap
// in-process snapshot for the periodic METRICS broadcast.
package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

var (
	deliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_deliveries_total",
			Help: "Channel delivery attempts by channel and status.",
		},
		[]string{"channel", "status"},
	)
	deliveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_delivery_duration_seconds",
			Help:    "Duration of channel delivery calls.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"channel"},
	)
	outcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_processing_outcomes_total",
			Help: "Processing passes by outcome.",
		},
		[]string{"outcome"},
	)
	malformedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_malformed_events_total",
			Help: "Input messages dropped because they could not be decoded.",
		},
	)
	breakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "notification_channel_breaker_state",
			Help: "Circuit breaker state per channel (0 closed, 1 open, 2 half-open).",
		},
		[]string{"channel"},
	)
)

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Delivered    int64 `json:"delivered"`
	Failed       int64 `json:"failed"`
	RateLimited  int64 `json:"rateLimited"`
	Processed    int64 `json:"processed"`
	Filtered     int64 `json:"filtered"`
	Duplicates   int64 `json:"duplicates"`
	Retried      int64 `json:"retried"`
	DeadLettered int64 `json:"deadLettered"`
	Malformed    int64 `json:"malformed"`
}

var counters struct {
	delivered, failed, rateLimited           atomic.Int64
	processed, filtered, duplicates, retried atomic.Int64
	deadLettered, malformed                  atomic.Int64
}

// Outcome labels.
const (
	OutcomeDuplicate    = "DUPLICATE"
	OutcomeFiltered     = "FILTERED"
	OutcomeProcessed    = "PROCESSED"
	OutcomeRetrying     = "RETRYING"
	OutcomeDeadLettered = "DEAD_LETTERED"
)

// RecordDelivery counts one channel attempt.
func RecordDelivery(ch model.Channel, status model.DeliveryStatus, took time.Duration) {
	deliveriesTotal.WithLabelValues(string(ch), string(status)).Inc()
	if status != model.DeliveryRateLimited {
		deliveryDuration.WithLabelValues(string(ch)).Observe(took.Seconds())
	}

	switch status {
	case model.DeliveryDelivered:
		counters.delivered.Add(1)
	case model.DeliveryFailed:
		counters.failed.Add(1)
	case model.DeliveryRateLimited:
		counters.rateLimited.Add(1)
	}
}

// RecordOutcome counts one processing pass.
func RecordOutcome(outcome string) {
	outcomesTotal.WithLabelValues(outcome).Inc()

	switch outcome {
	case OutcomeProcessed:
		counters.processed.Add(1)
	case OutcomeFiltered:
		counters.filtered.Add(1)
	case OutcomeDuplicate:
		counters.duplicates.Add(1)
	case OutcomeRetrying:
		counters.retried.Add(1)
	case OutcomeDeadLettered:
		counters.deadLettered.Add(1)
	}
}

// RecordMalformed counts a dropped input message.
func RecordMalformed() {
	malformedTotal.Inc()
	counters.malformed.Add(1)
}

// SetBreakerState exports the breaker state of a channel.
func SetBreakerState(channel string, state int) {
	breakerState.WithLabelValues(channel).Set(float64(state))
}

// Take returns the current counters.
func Take() Snapshot {
	return Snapshot{
		Delivered:    counters.delivered.Load(),
		Failed:       counters.failed.Load(),
		RateLimited:  counters.rateLimited.Load(),
		Processed:    counters.processed.Load(),
		Filtered:     counters.filtered.Load(),
		Duplicates:   counters.duplicates.Load(),
		Retried:      counters.retried.Load(),
		DeadLettered: counters.deadLettered.Load(),
		Malformed:    counters.malformed.Load(),
	}
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
