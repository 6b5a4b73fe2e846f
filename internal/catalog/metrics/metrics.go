package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the catalog module.
// Tracks filtered query durations, rejected queries and result sizes.
type Metrics struct {
	QueryDuration   prometheus.Histogram
	QueryRejected   *prometheus.CounterVec
	QueryFailed     prometheus.Counter
	ResultSize      prometheus.Histogram
	PropertyLookups *prometheus.CounterVec
}

// New creates catalog metrics registered on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "realestate_property_query_duration_seconds",
			Help:    "Duration of filtered property queries including the count",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		QueryRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "realestate_property_query_rejected_total",
			Help: "Filtered property queries rejected by parameter validation, by field",
		}, []string{"field"}),
		QueryFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "realestate_property_query_failed_total",
			Help: "Filtered property queries that failed in storage",
		}),
		ResultSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "realestate_property_query_result_size",
			Help:    "Number of properties returned per page",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
		PropertyLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "realestate_property_lookups_total",
			Help: "Single property lookups by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveQuery records the duration and page size of a successful query.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveQuery(start time.Time, items int) {
	if m == nil {
		return
	}
	m.QueryDuration.Observe(time.Since(start).Seconds())
	m.ResultSize.Observe(float64(items))
}

func (m *Metrics) IncrementRejected(field string) {
	if m == nil {
		return
	}
	m.QueryRejected.WithLabelValues(field).Inc()
}

func (m *Metrics) IncrementFailed() {
	if m == nil {
		return
	}
	m.QueryFailed.Inc()
}

// IncrementLookup counts a by-id lookup; outcome is "found", "not_found" or "error".
func (m *Metrics) IncrementLookup(outcome string) {
	if m == nil {
		return
	}
	m.PropertyLookups.WithLabelValues(outcome).Inc()
}
