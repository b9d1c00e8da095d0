package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// MultiSink fans one attachment out to several sinks. The body is
// buffered once so every sink reads the full content.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a sink writing to every given sink.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Attach forwards a to every sink, joining their errors.
func (m *MultiSink) Attach(ctx context.Context, a Attachment) error {
	data, err := io.ReadAll(a.Body)
	if err != nil {
		return fmt.Errorf("read %s attachment: %w", a.MediaType, err)
	}

	var errs []error
	for _, s := range m.sinks {
		err := s.Attach(ctx, Attachment{
			Name:      a.Name,
			MediaType: a.MediaType,
			Body:      bytes.NewReader(data),
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
