package artifact

import (
	"context"
	"errors"
	"fmt"

	"digital.vasic.artifacts/pkg/config"
	"digital.vasic.artifacts/pkg/logging"
	"digital.vasic.artifacts/pkg/page"
	"digital.vasic.artifacts/pkg/report"
	"digital.vasic.artifacts/pkg/scenario"
)

// Manager runs the artifact phase of one finished scenario:
// screenshot, then media, log and trace attachment. Stages are
// independent; a failing stage never prevents the next one.
// A Manager is not safe for concurrent use.
type Manager struct {
	desc     scenario.Descriptor
	decision Decision

	screenshot *ScreenshotCapturer
	media      MediaAttacher
	logs       LogAttacher
	trace      TraceLinker

	logger    logging.Logger
	observers []Observer
}

// NewManager binds a Manager to a finished scenario. An invalid
// scenario identity is returned as an error.
func NewManager(
	desc scenario.Descriptor,
	cfg config.Config,
	opts ...ManagerOption,
) (*Manager, error) {
	if err := desc.Identity.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", desc.Title, err)
	}

	id := desc.Identity
	m := &Manager{
		desc:       desc,
		decision:   Classify(desc.Status, desc.Tags, cfg.APITag),
		screenshot: NewScreenshotCapturer(cfg.ScreenshotPath(id)),
		media:      NewMediaAttacher(id.String()),
		logs:       NewLogAttacher(cfg.LogPath(id), cfg.MaxLogLines),
		trace: NewTraceLinker(
			cfg.Report.Host, cfg.Report.Port, cfg.TraceViewerURL,
		),
		logger: logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.WithFields(
		logging.ScenarioField(id),
		logging.StringField("status", desc.Status.String()),
	)
	for _, o := range m.observers {
		o.Decided(id, m.decision)
	}
	return m, nil
}

// Decision returns the capture decision for the scenario.
func (m *Manager) Decision() Decision {
	return m.decision
}

// Descriptor returns the scenario the manager is bound to.
func (m *Manager) Descriptor() scenario.Descriptor {
	return m.desc
}

// Capture takes the screenshot when media capture is requested.
// It never fails.
func (m *Manager) Capture(ctx context.Context, h page.Handle) {
	if !m.decision.CaptureMedia {
		return
	}
	m.record(m.screenshot.Capture(ctx, h))
}

// Attach pushes media (when requested), the log excerpt and the
// trace link (when requested) into sink. Missing resources are
// skipped; sink failures and configuration errors are joined and
// returned after every stage has run.
func (m *Manager) Attach(
	ctx context.Context,
	h page.Handle,
	sink report.Sink,
) error {
	if sink == nil {
		return ErrNoSink
	}
	defer m.screenshot.Discard()

	var errs []error

	if m.decision.CaptureMedia {
		shot, _ := m.screenshot.Bytes()
		outcomes, err := m.media.Attach(ctx, shot, h, sink)
		for _, o := range outcomes {
			m.record(o)
		}
		errs = append(errs, err)
	} else {
		m.record(skipped(KindScreenshot, ReasonNotRequested))
		m.record(skipped(KindVideo, ReasonNotRequested))
	}

	outcome, err := m.logs.Attach(ctx, sink)
	m.record(outcome)
	errs = append(errs, err)

	if m.decision.CaptureTrace {
		outcome, err := m.trace.Attach(ctx, m.desc.Identity, sink)
		m.record(outcome)
		errs = append(errs, err)
	} else {
		m.record(skipped(KindTrace, ReasonNotRequested))
	}

	return errors.Join(errs...)
}

// Run captures and then attaches.
func (m *Manager) Run(
	ctx context.Context,
	h page.Handle,
	sink report.Sink,
) error {
	m.Capture(ctx, h)
	return m.Attach(ctx, h, sink)
}

func (m *Manager) record(o Outcome) {
	id := m.desc.Identity
	kind := logging.StringField("artifact", string(o.Kind))

	switch o.State {
	case StateCaptured:
		m.logger.Debug("artifact captured", kind)
	case StateAttached:
		m.logger.Debug("artifact attached", kind,
			logging.StringField("media_type", o.MediaType))
		for _, obs := range m.observers {
			obs.Attached(id, o.Kind, o.MediaType)
		}
	case StateSkipped:
		m.logger.Debug("artifact skipped", kind,
			logging.StringField("reason", o.Reason))
		for _, obs := range m.observers {
			obs.Skipped(id, o.Kind, o.Reason)
		}
	case StateFailed:
		m.logger.Warn("artifact failed", kind, logging.ErrorField(o.Err))
		for _, obs := range m.observers {
			obs.Failed(id, o.Kind, o.Err)
		}
	}
}
