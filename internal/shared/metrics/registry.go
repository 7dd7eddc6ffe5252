package metrics

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

//go:generate mockgen -source=registry.go -destination=./mocks/registry_mock.go -package=mocks

// Renderer serializes a metrics snapshot for scraping.
type Renderer interface {
	Render() ([]byte, error)
	ContentType() string
}

// Options configures a Registry.
type Options struct {
	// ProcessCollectors registers the Go runtime and process collectors.
	ProcessCollectors bool
}

// Registry owns the metric definitions of one service instance and renders them
// in the Prometheus text exposition format.
type Registry struct {
	registry *prometheus.Registry
	format   expfmt.Format
}

// NewRegistry creates an empty registry, plus the default collectors if requested.
func NewRegistry(opts Options) *Registry {
	registry := prometheus.NewRegistry()
	if opts.ProcessCollectors {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return &Registry{
		registry: registry,
		format:   expfmt.NewFormat(expfmt.TypeTextPlain),
	}
}

// Register adds a collector. It fails if a metric with the same name is already registered.
func (r *Registry) Register(c Collector) error {
	return r.registry.Register(c)
}

// MustRegister is Register that panics on failure. Meant for startup wiring.
func (r *Registry) MustRegister(cs ...Collector) {
	r.registry.MustRegister(cs...)
}

// NewCounterVec creates a CounterVec and registers it, panicking on a duplicate name.
func (r *Registry) NewCounterVec(opts CounterOpts, labelNames []string) *CounterVec {
	return promauto.With(r.registry).NewCounterVec(opts, labelNames)
}

// NewHistogram creates an unlabeled Histogram and registers it, panicking on a duplicate name.
func (r *Registry) NewHistogram(opts HistogramOpts) Histogram {
	return promauto.With(r.registry).NewHistogram(opts)
}

// Render gathers the current value of every registered metric and encodes it as text.
// Families come out sorted by name.
func (r *Registry) Render() ([]byte, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, r.format)
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return nil, fmt.Errorf("failed to encode metric family %q: %w", family.GetName(), err)
		}
	}

	return buf.Bytes(), nil
}

// ContentType is the value for the Content-Type header of a rendered snapshot.
func (r *Registry) ContentType() string {
	return string(r.format)
}
