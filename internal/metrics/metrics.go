// Package metrics exposes Prometheus collectors for layout and scheduler
// activity. Collectors register with the default registry on import.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pass names used as the "pass" label.
const (
	PassFit    = "fit"
	PassUpdate = "update"
)

var (
	layoutPasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxdock_layout_passes_total",
		Help: "Fit and update passes run by layouts",
	}, []string{"layout", "pass"})

	unresolvedSpace = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boxdock_layout_unresolved_space",
		Help:    "Space the box engine could not assign during an update, when non-zero",
		Buckets: []float64{-1000, -100, -10, -1, 1, 10, 100, 1000},
	}, []string{"layout"})

	schedulerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxdock_scheduler_requests_total",
		Help: "Fit and update requests posted to the scheduler",
	}, []string{"pass"})

	schedulerCoalesced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boxdock_scheduler_coalesced_total",
		Help: "Requests folded into an already pending pass",
	}, []string{"pass"})

	flushDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boxdock_scheduler_flush_duration_seconds",
		Help:    "Time to drain the scheduler queue",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	})
)

// ObservePass counts one pass of the named layout kind.
func ObservePass(layout, pass string) {
	layoutPasses.WithLabelValues(layout, pass).Inc()
}

// ObserveUnresolved records the delta returned by the box engine. Zero
// deltas are the common case and are not recorded.
func ObserveUnresolved(layout string, delta float64) {
	if delta == 0 {
		return
	}
	unresolvedSpace.WithLabelValues(layout).Observe(delta)
}

// ObserveRequest counts a scheduler request, and whether it was coalesced.
func ObserveRequest(pass string, coalesced bool) {
	schedulerRequests.WithLabelValues(pass).Inc()
	if coalesced {
		schedulerCoalesced.WithLabelValues(pass).Inc()
	}
}

// ObserveFlush records how long a scheduler flush took.
func ObserveFlush(d time.Duration) {
	flushDuration.Observe(d.Seconds())
}
