package artifact

import (
	"errors"

	"digital.vasic.artifacts/pkg/scenario"
)

// Kind names an artifact.
type Kind string

// Artifact kinds.
const (
	KindScreenshot Kind = "screenshot"
	KindVideo      Kind = "video"
	KindLog        Kind = "log"
	KindTrace      Kind = "trace"
)

// Reasons a stage had nothing to attach.
const (
	ReasonNotRequested = "not_requested"
	ReasonNoPage       = "no_page"
	ReasonNoScreenshot = "no_screenshot"
	ReasonNoVideo      = "no_video"
	ReasonNoLogFile    = "no_log_file"
	ReasonEmptyLog     = "empty_log"
)

var (
	// ErrAttach wraps failures of the report sink. They are returned
	// to the harness.
	ErrAttach = errors.New("attach to report")

	// ErrNoSink is returned when no report sink was supplied.
	ErrNoSink = errors.New("no report sink")

	// ErrNoReportPort is returned when a trace link is requested
	// without a configured report server port.
	ErrNoReportPort = errors.New("report server port not configured")
)

// State is what happened to one artifact.
type State int

const (
	StateAttached State = iota
	StateCaptured
	StateSkipped
	StateFailed
)

// Outcome describes one stage result for one artifact.
type Outcome struct {
	Kind      Kind
	State     State
	MediaType string
	Reason    string
	Err       error
}

func attached(kind Kind, mediaType string) Outcome {
	return Outcome{Kind: kind, State: StateAttached, MediaType: mediaType}
}

func skipped(kind Kind, reason string) Outcome {
	return Outcome{Kind: kind, State: StateSkipped, Reason: reason}
}

func failed(kind Kind, err error) Outcome {
	return Outcome{Kind: kind, State: StateFailed, Err: err}
}

// Observer is notified about every artifact decision and stage
// result. Implementations must be safe for concurrent use.
type Observer interface {
	Decided(id scenario.Identity, d Decision)
	Attached(id scenario.Identity, kind Kind, mediaType string)
	Skipped(id scenario.Identity, kind Kind, reason string)
	Failed(id scenario.Identity, kind Kind, err error)
}

// NoopObserver ignores every notification.
type NoopObserver struct{}

func (NoopObserver) Decided(scenario.Identity, Decision)      {}
func (NoopObserver) Attached(scenario.Identity, Kind, string) {}
func (NoopObserver) Skipped(scenario.Identity, Kind, string)  {}
func (NoopObserver) Failed(scenario.Identity, Kind, error)    {}
