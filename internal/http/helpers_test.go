package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hello-devsecops/internal/shared/loggers"
	"hello-devsecops/internal/shared/metrics"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) loggers.Logger {
	t.Helper()

	logger, err := loggers.NewWithWriter("info", io.Discard)
	require.NoError(t, err)
	return logger
}

func serve(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func gather(t *testing.T, registry *metrics.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	out, err := registry.Render()
	require.NoError(t, err)
	return parseExposition(t, out)
}

func parseExposition(t *testing.T, body []byte) map[string]*dto.MetricFamily {
	t.Helper()

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(bytes.NewReader(body))
	require.NoError(t, err)
	return families
}

// requestCount returns the http_requests_total value for the label tuple, 0 if the series does not exist.
func requestCount(families map[string]*dto.MetricFamily, method, route, status string) float64 {
	family, ok := families[metricNameRequestsTotal]
	if !ok {
		return 0
	}
	for _, m := range family.GetMetric() {
		labels := map[string]string{}
		for _, pair := range m.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels[metrics.LabelMethod] == method && labels[metrics.LabelRoute] == route && labels[metrics.LabelStatus] == status {
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func seriesCount(families map[string]*dto.MetricFamily) int {
	family, ok := families[metricNameRequestsTotal]
	if !ok {
		return 0
	}
	return len(family.GetMetric())
}

// durationStats returns the sample count and sum of http_request_duration_seconds.
func durationStats(families map[string]*dto.MetricFamily) (uint64, float64) {
	family, ok := families[metricNameRequestDuration]
	if !ok || len(family.GetMetric()) == 0 {
		return 0, 0
	}
	h := family.GetMetric()[0].GetHistogram()
	return h.GetSampleCount(), h.GetSampleSum()
}
