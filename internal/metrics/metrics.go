package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// CheckoutsTotal counts checkout initiations by result (ok, failed, unrecorded).
	CheckoutsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "checkouts_total",
		Help:      "Checkout sessions initiated, labeled by result.",
	}, []string{"result"})

	// PaymentEventsTotal counts authenticated payment events by kind.
	PaymentEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "payment_events_total",
		Help:      "Verified payment provider events processed, labeled by kind.",
	}, []string{"kind"})

	// ReportsTotal counts report generations by result (completed, superseded, failed).
	ReportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "reports_total",
		Help:      "Report generations, labeled by result.",
	}, []string{"result"})

	// SideEffectFailuresTotal counts non-fatal secondary step failures.
	SideEffectFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Name:      "side_effect_failures_total",
		Help:      "Secondary steps that failed without failing the surrounding operation, labeled by step.",
	}, []string{"step"})

	RenderDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fulfillment",
		Name:      "report_render_seconds",
		Help:      "Time spent rendering one report document.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	// SweepClaimed is the number of stuck reports claimed by the last sweep.
	SweepClaimed = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fulfillment",
		Name:      "sweep_claimed",
		Help:      "Stuck reports claimed by the most recent reconciliation sweep.",
	})
)

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			CheckoutsTotal,
			PaymentEventsTotal,
			ReportsTotal,
			SideEffectFailuresTotal,
			RenderDurationSeconds,
			SweepClaimed,
		)
	})
}
