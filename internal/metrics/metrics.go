package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the roster collectors. Each instance owns its registry so
// tests and multiple sessions never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	RosterLoads     prometheus.Counter
	RosterSaves     *prometheus.CounterVec
	RosterEdits     prometheus.Counter
	UseCaseDuration *prometheus.HistogramVec
}

// New registers the roster collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RosterLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "roster_loads_total",
			Help: "The total number of successful roster loads",
		}),
		RosterSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_saves_total",
			Help: "Total number of roster saves by outcome",
		}, []string{"status"}),
		RosterEdits: factory.NewCounter(prometheus.CounterOpts{
			Name: "roster_edits_total",
			Help: "The total number of member edits merged into a session",
		}),
		UseCaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_use_case_duration_seconds",
			Help:    "Duration of roster use cases",
			Buckets: prometheus.DefBuckets,
		}, []string{"use_case", "status"}),
	}
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current values in the text exposition format for
// the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Status labels a use case outcome.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
