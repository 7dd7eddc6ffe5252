package http

import (
	"hello-devsecops/internal/shared/metrics"
)

const (
	metricNameRequestsTotal   = "http_requests_total"
	metricNameRequestDuration = "http_request_duration_seconds"
)

// requestDurationBuckets are upper bounds in seconds; +Inf is implicit.
var requestDurationBuckets = []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1}

type httpMetrics struct {
	requestsTotal   *metrics.CounterVec
	requestDuration metrics.Histogram
}

// newHTTPMetrics registers the request metrics on registry. It panics if they already exist there.
func newHTTPMetrics(registry *metrics.Registry) *httpMetrics {
	return &httpMetrics{
		requestsTotal: registry.NewCounterVec(
			metrics.CounterOpts{
				Name: metricNameRequestsTotal,
				Help: "Total number of HTTP requests received by the server",
			},
			[]string{metrics.LabelMethod, metrics.LabelRoute, metrics.LabelStatus},
		),
		requestDuration: registry.NewHistogram(
			metrics.HistogramOpts{
				Name:    metricNameRequestDuration,
				Help:    "Duration of HTTP requests in seconds",
				Buckets: requestDurationBuckets,
			},
		),
	}
}
