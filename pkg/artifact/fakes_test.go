package artifact

import (
	"context"
	"errors"
	"os"
	"sync"

	"digital.vasic.artifacts/pkg/page"
	"digital.vasic.artifacts/pkg/report"
	"digital.vasic.artifacts/pkg/scenario"
)

type fakeVideo struct {
	path string
	err  error
}

func (v fakeVideo) Path() (string, error) { return v.path, v.err }

type fakeSurface struct {
	png       []byte
	shotErr   error
	video     *fakeVideo
	shotPaths []string
}

func (s *fakeSurface) Screenshot(
	_ context.Context, path string, _ page.Format,
) ([]byte, error) {
	if s.shotErr != nil {
		return nil, s.shotErr
	}
	s.shotPaths = append(s.shotPaths, path)
	if err := os.WriteFile(path, s.png, 0644); err != nil {
		return nil, err
	}
	return s.png, nil
}

func (s *fakeSurface) Video() (page.Video, bool) {
	if s.video == nil {
		return nil, false
	}
	return *s.video, true
}

var errSinkDown = errors.New("sink down")

func brokenSink() report.Sink {
	return report.SinkFunc(func(context.Context, report.Attachment) error {
		return errSinkDown
	})
}

type event struct {
	call   string
	kind   Kind
	detail string
}

type recordingObserver struct {
	mu       sync.Mutex
	decision *Decision
	events   []event
}

func (r *recordingObserver) Decided(_ scenario.Identity, d Decision) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decision = &d
}

func (r *recordingObserver) Attached(_ scenario.Identity, k Kind, mt string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{"attached", k, mt})
}

func (r *recordingObserver) Skipped(_ scenario.Identity, k Kind, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{"skipped", k, reason})
}

func (r *recordingObserver) Failed(_ scenario.Identity, k Kind, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{"failed", k, err.Error()})
}

func (r *recordingObserver) find(kind Kind) (event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.kind == kind {
			return e, true
		}
	}
	return event{}, false
}
