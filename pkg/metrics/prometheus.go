package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/scenario"
)

const namespace = "scenario_artifacts"

// PrometheusMetrics implements ArtifactMetrics with client_golang
// counters. Scenario identities are not used as labels to keep
// cardinality bounded.
type PrometheusMetrics struct {
	decisions *prometheus.CounterVec
	attached  *prometheus.CounterVec
	skipped   *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewPrometheusMetrics creates the counters and registers them
// with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Capture decisions by media and trace flags.",
		}, []string{"media", "trace"}),
		attached: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attached_total",
			Help:      "Artifacts attached to scenario reports.",
		}, []string{"kind", "media_type"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_total",
			Help:      "Artifacts skipped because there was nothing to attach.",
		}, []string{"kind", "reason"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_total",
			Help:      "Artifact stages that failed.",
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{
		m.decisions, m.attached, m.skipped, m.failed,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) Decided(_ scenario.Identity, d artifact.Decision) {
	m.decisions.WithLabelValues(
		strconv.FormatBool(d.CaptureMedia),
		strconv.FormatBool(d.CaptureTrace),
	).Inc()
}

func (m *PrometheusMetrics) Attached(_ scenario.Identity, kind artifact.Kind, mediaType string) {
	m.attached.WithLabelValues(string(kind), mediaType).Inc()
}

func (m *PrometheusMetrics) Skipped(_ scenario.Identity, kind artifact.Kind, reason string) {
	m.skipped.WithLabelValues(string(kind), reason).Inc()
}

func (m *PrometheusMetrics) Failed(_ scenario.Identity, kind artifact.Kind, _ error) {
	m.failed.WithLabelValues(string(kind)).Inc()
}
