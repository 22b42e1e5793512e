package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the analysis pipeline.
type Metrics struct {
	// Stage latencies: locate, evaluate, score, suggest, resolve, security
	StageLatency *prometheus.HistogramVec

	// Terminal outcome per analysis request
	Outcomes *prometheus.CounterVec

	// Stages that hit their deadline
	StageTimeouts *prometheus.CounterVec

	TrustScores prometheus.Histogram

	// Pool slots currently held
	PoolInUse prometheus.Gauge
}

// New registers the analysis metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StageLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "policyguard_stage_duration_seconds",
			Help:    "Duration of analysis pipeline stages",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"stage"}),

		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "policyguard_analysis_outcomes_total",
			Help: "Analysis requests by terminal outcome",
		}, []string{"outcome"}), // safe, unsafe, not_found, invalid, timeout, error

		StageTimeouts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "policyguard_stage_timeouts_total",
			Help: "Pipeline stages that exceeded their time limit",
		}, []string{"stage"}),

		TrustScores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "policyguard_trust_score",
			Help:    "Distribution of determined trust scores",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),

		PoolInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name: "policyguard_pool_in_use",
			Help: "Worker pool slots currently held by a stage",
		}),
	}
}

// ObserveStage records how long a stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m != nil {
		m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// IncrementOutcome records a terminal outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(outcome).Inc()
	}
}

// IncrementTimeout records a stage deadline.
func (m *Metrics) IncrementTimeout(stage string) {
	if m != nil {
		m.StageTimeouts.WithLabelValues(stage).Inc()
	}
}

// ObserveTrustScore records a determined score. Unknown scores are skipped.
func (m *Metrics) ObserveTrustScore(score int) {
	if m != nil && score > 0 {
		m.TrustScores.Observe(float64(score))
	}
}

func (m *Metrics) PoolAcquired() {
	if m != nil {
		m.PoolInUse.Inc()
	}
}

func (m *Metrics) PoolReleased() {
	if m != nil {
		m.PoolInUse.Dec()
	}
}
