package harness

import (
	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/logging"
	"digital.vasic.artifacts/pkg/report"
)

// Option configures Hooks.
type Option func(*Hooks)

// WithLogger sets the suite logger. Artifact stage results and
// hook problems are written to it.
func WithLogger(logger logging.Logger) Option {
	return func(h *Hooks) {
		h.logger = logger
	}
}

// WithObserver adds an observer passed to every scenario Manager,
// e.g. a metrics.PrometheusMetrics or a monitor.EventCollector.
func WithObserver(o artifact.Observer) Option {
	return func(h *Hooks) {
		h.observers = append(h.observers, o)
	}
}

// WithSink adds a sink that receives every attachment alongside
// the godog report. The sink is called with the scenario identity.
func WithSink(factory func(id string) report.Sink) Option {
	return func(h *Hooks) {
		h.sinks = append(h.sinks, factory)
	}
}

// WithUniqueIdentities appends the pickle id to every identity so
// concurrent scenarios with equal titles do not share files.
func WithUniqueIdentities(enabled bool) Option {
	return func(h *Hooks) {
		h.unique = enabled
	}
}
