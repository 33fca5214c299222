// Package metrics instruments the Director and its engines with Prometheus
// metrics, adapted from the teacher repo's LLM-middleware recorder: engine
// runs and proof times stand in for LLM requests and token costs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records Director-level counters and histograms.
type Recorder struct {
	enginesStarted    *prometheus.CounterVec
	messagesHandled   *prometheus.CounterVec
	propertiesSettled *prometheus.CounterVec
	proofDuration     *prometheus.HistogramVec
	supervisionLoop   prometheus.Counter
}

// NewRecorder creates and registers a Recorder against reg. Pass
// prometheus.NewRegistry() in tests to avoid polluting the default
// registry; pass prometheus.DefaultRegisterer in production.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		enginesStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vericore_engines_started_total",
				Help: "Total number of proof engines started, by engine name.",
			},
			[]string{"engine"},
		),
		messagesHandled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vericore_messages_handled_total",
				Help: "Total number of messages the Director handled, by kind.",
			},
			[]string{"kind"},
		),
		propertiesSettled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vericore_properties_settled_total",
				Help: "Total number of properties settled, by verdict.",
			},
			[]string{"verdict"},
		),
		proofDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vericore_proof_duration_seconds",
				Help:    "Proof time reported by engines for Valid verdicts.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"engine"},
		),
		supervisionLoop: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "vericore_supervision_loop_iterations_total",
				Help: "Total number of supervision loop passes.",
			},
		),
	}
}

func (r *Recorder) EngineStarted(engine string) {
	r.enginesStarted.WithLabelValues(engine).Inc()
}

func (r *Recorder) MessageHandled(kind string) {
	r.messagesHandled.WithLabelValues(kind).Inc()
}

func (r *Recorder) PropertySettled(verdict string, n int) {
	r.propertiesSettled.WithLabelValues(verdict).Add(float64(n))
}

func (r *Recorder) ProofTime(engine string, d time.Duration) {
	r.proofDuration.WithLabelValues(engine).Observe(d.Seconds())
}

func (r *Recorder) SupervisionLoopIteration() {
	r.supervisionLoop.Inc()
}
