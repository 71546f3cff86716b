// Package metrics keeps the counters ecoroute exposes. They live on a
// private registry and are written to a text file on demand; there is no
// scrape endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const PromNamespace = "ecoroute"

// Set is the group of collectors registered on one registry.
type Set struct {
	Registry *prometheus.Registry

	SearchInputs     prometheus.Counter
	SearchQueries    prometheus.Counter
	SearchSkipped    prometheus.Counter
	Conversions      prometheus.Counter
	ValidationFailed *prometheus.CounterVec
	EmissionRequests *prometheus.CounterVec
}

// New builds a Set on a fresh registry.
func New() *Set {
	s := &Set{
		Registry: prometheus.NewRegistry(),
		SearchInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: PromNamespace,
			Subsystem: "search",
			Name:      "inputs_total",
			Help:      "Location input events received before debouncing",
		}),
		SearchQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: PromNamespace,
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Settled queries handed to the query handler",
		}),
		SearchSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: PromNamespace,
			Subsystem: "search",
			Name:      "skipped_total",
			Help:      "Settled queries dropped for being too short",
		}),
		Conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: PromNamespace,
			Subsystem: "impact",
			Name:      "conversions_total",
			Help:      "Emission savings converted to impact equivalents",
		}),
		ValidationFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: PromNamespace,
			Subsystem: "validation",
			Name:      "failures_total",
			Help:      "Rejected form fields",
		}, []string{"field"}),
		EmissionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: PromNamespace,
			Subsystem: "emissions",
			Name:      "calculations_total",
			Help:      "Emission calculations by transport mode",
		}, []string{"mode"}),
	}

	s.Registry.MustRegister(
		s.SearchInputs,
		s.SearchQueries,
		s.SearchSkipped,
		s.Conversions,
		s.ValidationFailed,
		s.EmissionRequests,
	)
	return s
}

// WriteFile dumps the registry in text exposition format to path.
func (s *Set) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, s.Registry)
}
