package harness

import (
	"context"
	"errors"

	"github.com/cucumber/godog"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/config"
	"digital.vasic.artifacts/pkg/logging"
	"digital.vasic.artifacts/pkg/report"
	"digital.vasic.artifacts/pkg/scenario"
)

// Hooks wires the artifact phase into godog scenarios.
type Hooks struct {
	cfg       config.Config
	logger    logging.Logger
	observers []artifact.Observer
	sinks     []func(id string) report.Sink
	unique    bool
}

// New creates hooks for the given configuration.
func New(cfg config.Config, opts ...Option) *Hooks {
	h := &Hooks{
		cfg:    cfg,
		logger: logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register installs the before and after scenario hooks.
func (h *Hooks) Register(sc *godog.ScenarioContext) {
	sc.Before(h.before)
	sc.After(h.after)
}

// StatusFromError maps the error godog hands to an after-scenario
// hook to a scenario status. It never yields StatusUnknown; the
// after hook uses that for scenarios it saw no before hook for.
func StatusFromError(err error) scenario.Status {
	switch {
	case err == nil:
		return scenario.StatusPassed
	case errors.Is(err, godog.ErrPending):
		return scenario.StatusPending
	case errors.Is(err, godog.ErrSkip):
		return scenario.StatusSkipped
	case errors.Is(err, godog.ErrUndefined):
		return scenario.StatusUndefined
	case errors.Is(err, godog.ErrAmbiguous):
		return scenario.StatusAmbiguous
	}
	return scenario.StatusFailed
}

func (h *Hooks) identity(sc *godog.Scenario) (scenario.Identity, error) {
	id, err := scenario.NewIdentity(sc.Name)
	if err != nil {
		return "", err
	}
	if h.unique {
		return id.WithSuffix(sc.Id)
	}
	return id, nil
}

func (h *Hooks) before(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
	id, err := h.identity(sc)
	if err != nil {
		h.logger.Warn("scenario has no usable identity",
			logging.StringField("title", sc.Name), logging.ErrorField(err))
		return ctx, nil
	}

	st := &scenarioState{id: id}
	logger, err := logging.SetupScenarioLogging(h.cfg.ResultsDir, id, h.cfg.Verbose)
	if err != nil {
		h.logger.Warn("scenario log unavailable",
			logging.ScenarioField(id), logging.ErrorField(err))
	} else {
		st.logger = logger
		logger.Info("scenario started", logging.StringField("title", sc.Name))
	}
	return withState(ctx, st), nil
}

// after never replaces the scenario error: artifact problems are
// logged only.
func (h *Hooks) after(ctx context.Context, sc *godog.Scenario, scErr error) (context.Context, error) {
	status := StatusFromError(scErr)

	st, ok := stateFrom(ctx)
	if !ok {
		id, err := h.identity(sc)
		if err != nil {
			return ctx, scErr
		}
		st = &scenarioState{id: id}
		// Without the before hook a nil error does not prove the
		// steps ran.
		if scErr == nil {
			status = scenario.StatusUnknown
		}
	}
	if st.logger != nil {
		st.logger.Info("scenario finished",
			logging.StringField("status", status.String()))
		if err := st.logger.Close(); err != nil {
			h.logger.Warn("close scenario log",
				logging.ScenarioField(st.id), logging.ErrorField(err))
		}
	}

	tags := make([]string, 0, len(sc.Tags))
	for _, t := range sc.Tags {
		tags = append(tags, t.Name)
	}
	desc := scenario.Descriptor{
		Title:    sc.Name,
		Identity: st.id,
		Status:   status,
		Tags:     scenario.NewTags(tags...),
	}

	opts := []artifact.ManagerOption{artifact.WithLogger(h.logger)}
	for _, o := range h.observers {
		opts = append(opts, artifact.WithObserver(o))
	}
	m, err := artifact.NewManager(desc, h.cfg, opts...)
	if err != nil {
		h.logger.Warn("artifact phase skipped", logging.ErrorField(err))
		return ctx, scErr
	}

	godogSink := NewGodogSink(ctx)
	var sink report.Sink = godogSink
	if len(h.sinks) > 0 {
		sinks := []report.Sink{godogSink}
		for _, f := range h.sinks {
			sinks = append(sinks, f(st.id.String()))
		}
		sink = report.NewMultiSink(sinks...)
	}

	if err := m.Run(ctx, PageFrom(ctx), sink); err != nil {
		h.logger.Error("artifact phase failed",
			logging.ScenarioField(st.id), logging.ErrorField(err))
	}
	return godogSink.Context(), scErr
}
