package status

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/breaker"
	"github.com/aliskhannn/notification-pipeline/internal/metrics"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

type metricsSender interface {
	SendMetrics(ctx context.Context, msg model.StatusMessage) error
}

type breakerStates interface {
	States() map[model.Channel]breaker.State
}

// MetricsData is the payload of a METRICS message.
type MetricsData struct {
	metrics.Snapshot
	Breakers map[model.Channel]string `json:"breakers"`
}

// Reporter periodically broadcasts a metrics snapshot.
type Reporter struct {
	sender   metricsSender
	breakers breakerStates
	interval time.Duration
}

// NewReporter creates a Reporter ticking every interval.
func NewReporter(sender metricsSender, breakers breakerStates, interval time.Duration) *Reporter {
	return &Reporter{sender: sender, breakers: breakers, interval: interval}
}

// Run broadcasts until ctx is done.
func (r *Reporter) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Report(ctx); err != nil {
				zlog.Logger.Warn().Err(err).Msg("failed to broadcast metrics")
			}
		}
	}
}

// Report sends one snapshot.
func (r *Reporter) Report(ctx context.Context) error {
	data := MetricsData{
		Snapshot: metrics.Take(),
		Breakers: make(map[model.Channel]string),
	}

	for ch, state := range r.breakers.States() {
		data.Breakers[ch] = state.String()
	}

	return r.sender.SendMetrics(ctx, model.StatusMessage{
		Type:      model.MessageMetrics,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}
