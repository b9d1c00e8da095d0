package harness

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/cucumber/godog"

	"digital.vasic.artifacts/pkg/report"
)

// GodogSink collects attachments into a godog context. godog keeps
// attachments on the context, so the owner returns Context() from
// the hook once attaching is done.
type GodogSink struct {
	mu  sync.Mutex
	ctx context.Context
}

// NewGodogSink creates a sink that extends ctx.
func NewGodogSink(ctx context.Context) *GodogSink {
	return &GodogSink{ctx: ctx}
}

// Attach reads a.Body and records it with godog.Attach.
func (s *GodogSink) Attach(ctx context.Context, a report.Attachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.Body == nil {
		return fmt.Errorf("attachment %q: nil body", a.Name)
	}
	body, err := io.ReadAll(a.Body)
	if err != nil {
		return fmt.Errorf("read attachment %q: %w", a.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = godog.Attach(s.ctx, godog.Attachment{
		Body:      body,
		FileName:  a.Name,
		MediaType: a.MediaType,
	})
	return nil
}

// Context returns the context carrying every attachment so far.
func (s *GodogSink) Context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// Attachments returns the attachments recorded so far.
func (s *GodogSink) Attachments() []godog.Attachment {
	return godog.Attachments(s.Context())
}
