// Package report provides the sinks scenario artifacts are attached
// to.
package report

import (
	"context"
	"io"
)

// Media types used for scenario attachments.
const (
	MediaTypePNG  = "image/png"
	MediaTypeWebM = "video/webm"
	MediaTypeText = "text/plain"
	MediaTypeHTML = "text/html"
)

// Attachment is one piece of evidence pushed into a report.
type Attachment struct {
	// Name is an optional display or file name.
	Name string

	// MediaType describes Body, e.g. MediaTypePNG.
	MediaType string

	// Body is read to EOF by the sink. Sinks do not close it.
	Body io.Reader
}

// Sink receives attachments for one scenario. Every call produces
// one independent attachment. Implementations serialize concurrent
// calls internally.
type Sink interface {
	Attach(ctx context.Context, a Attachment) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, a Attachment) error

// Attach calls f.
func (f SinkFunc) Attach(ctx context.Context, a Attachment) error {
	return f(ctx, a)
}
