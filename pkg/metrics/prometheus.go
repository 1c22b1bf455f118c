package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	errorsTotal   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	reportSpend   prometheus.Gauge
	reportRevenue prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adspull_fetch_total",
				Help: "Total source fetches by source name",
			},
			[]string{"source"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adspull_fetch_duration_seconds",
				Help:    "Duration of vendor API fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adspull_errors_total",
				Help: "Total errors by kind",
			},
			[]string{"kind"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adspull_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		reportSpend: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "adspull_report_spend",
			Help: "Overall ad spend of the last computed report",
		}),
		reportRevenue: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "adspull_report_revenue",
			Help: "Total revenue of the last computed report",
		}),
	}
}

// RecordFetch records one fetch from a source and its duration.
func (r *Recorder) RecordFetch(source string, seconds float64) {
	r.fetchTotal.WithLabelValues(source).Inc()
	r.fetchDuration.WithLabelValues(source).Observe(seconds)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordReport records the headline figures of the last computed report.
func (r *Recorder) RecordReport(spend, revenue float64) {
	r.reportSpend.Set(spend)
	r.reportRevenue.Set(revenue)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
