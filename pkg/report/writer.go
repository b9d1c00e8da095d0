package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// WriterSink prints text attachments to a writer and summarizes
// binary ones with their size. It is used by command-line tools to
// preview what a scenario would attach.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Attach writes a to the underlying writer.
func (s *WriterSink) Attach(_ context.Context, a Attachment) error {
	data, err := io.ReadAll(a.Body)
	if err != nil {
		return fmt.Errorf("read %s attachment: %w", a.MediaType, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if isText(a.MediaType) {
		_, err = fmt.Fprintf(s.w, "%s\n", data)
		return err
	}
	_, err = fmt.Fprintf(
		s.w, "[%s attachment, %d bytes]\n", a.MediaType, len(data),
	)
	return err
}

func isText(mediaType string) bool {
	return strings.HasPrefix(mediaType, "text/")
}
