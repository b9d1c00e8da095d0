// Package metrics counts artifact decisions and stage results.
package metrics

import (
	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/scenario"
)

// ArtifactMetrics is an artifact.Observer that records counters.
type ArtifactMetrics interface {
	artifact.Observer
}

// NoopMetrics is a no-op implementation of ArtifactMetrics
// useful for testing or when metrics collection is disabled.
type NoopMetrics struct{}

func (NoopMetrics) Decided(scenario.Identity, artifact.Decision)      {}
func (NoopMetrics) Attached(scenario.Identity, artifact.Kind, string) {}
func (NoopMetrics) Skipped(scenario.Identity, artifact.Kind, string)  {}
func (NoopMetrics) Failed(scenario.Identity, artifact.Kind, error)    {}
