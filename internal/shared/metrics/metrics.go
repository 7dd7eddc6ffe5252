package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// CounterVec is a type alias for prometheus.CounterVec.
type CounterVec = prometheus.CounterVec

// Histogram is a type alias for prometheus.Histogram.
type Histogram = prometheus.Histogram

// Collector is a type alias for prometheus.Collector.
type Collector = prometheus.Collector
