package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	outcomeSuccess     = "success"
	outcomeConfigError = "config_error"
	outcomeRemoteError = "remote_error"
)

// Metrics are the Prometheus collectors updated by a Game.
type Metrics struct {
	sessions     *prometheus.CounterVec
	turns        *prometheus.CounterVec
	turnDuration prometheus.Histogram
	inFlight     prometheus.Gauge
}

// NewMetrics registers the game collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		sessions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dungeon_master_sessions_started_total",
			Help: "Game starts, partitioned by outcome.",
		}, []string{"outcome"}),
		turns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dungeon_master_turns_total",
			Help: "Player turns forwarded to the model, partitioned by outcome.",
		}, []string{"outcome"}),
		turnDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dungeon_master_model_call_duration_seconds",
			Help:    "Latency of single model exchanges.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s .. 32s
		}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "dungeon_master_calls_in_flight",
			Help: "1 while a model call is outstanding.",
		}),
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case isConfiguration(err):
		return outcomeConfigError
	default:
		return outcomeRemoteError
	}
}

// A nil *Metrics is valid and records nothing.

func (m *Metrics) callStarted() {
	if m != nil {
		m.inFlight.Set(1)
	}
}

func (m *Metrics) callFinished(seconds float64) {
	if m != nil {
		m.inFlight.Set(0)
		m.turnDuration.Observe(seconds)
	}
}

func (m *Metrics) sessionStarted(err error) {
	if m != nil {
		m.sessions.WithLabelValues(outcomeOf(err)).Inc()
	}
}

func (m *Metrics) turnFinished(err error) {
	if m != nil {
		m.turns.WithLabelValues(outcomeOf(err)).Inc()
	}
}
