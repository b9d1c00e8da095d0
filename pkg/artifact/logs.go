package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"digital.vasic.artifacts/pkg/report"
)

// DefaultMaxLogLines bounds an excerpt when no limit is given.
const DefaultMaxLogLines = 100

// TruncationNotice is appended to excerpts cut at the line limit.
const TruncationNotice = "\n[Log truncated due to excessive length]"

// Excerpt renders the head of a log for attachment. It reports
// false when the log holds at most one line.
func Excerpt(content string, maxLines int) (string, bool) {
	if maxLines <= 0 {
		maxLines = DefaultMaxLogLines
	}

	lines := strings.Split(content, "\n")
	total := len(lines)
	if total <= 1 {
		return "", false
	}

	displayed := min(total, maxLines)
	var notice string
	if total > maxLines {
		notice = TruncationNotice
	}

	return fmt.Sprintf(
		"Logs (%d/%d lines):\n%s%s",
		displayed, total,
		strings.Join(lines[:displayed], "\n"),
		notice,
	), true
}

// LogAttacher attaches an excerpt of the scenario log file. It only
// reads the file.
type LogAttacher struct {
	path     string
	maxLines int
}

// NewLogAttacher creates an attacher for the log at path.
func NewLogAttacher(path string, maxLines int) LogAttacher {
	return LogAttacher{path: path, maxLines: maxLines}
}

func (a LogAttacher) read() (string, bool, error) {
	data, err := os.ReadFile(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read log %s: %w", a.path, err)
	}
	return string(data), true, nil
}

// Excerpt reads the log and renders it. A missing or effectively
// empty file yields false without error.
func (a LogAttacher) Excerpt() (string, bool, error) {
	content, found, err := a.read()
	if err != nil || !found {
		return "", false, err
	}
	text, ok := Excerpt(content, a.maxLines)
	return text, ok, nil
}

// Attach attaches the excerpt as plain text. Only sink failures
// are returned as errors.
func (a LogAttacher) Attach(ctx context.Context, sink report.Sink) (Outcome, error) {
	content, found, err := a.read()
	if err != nil {
		return failed(KindLog, err), nil
	}
	if !found {
		return skipped(KindLog, ReasonNoLogFile), nil
	}

	text, ok := Excerpt(content, a.maxLines)
	if !ok {
		return skipped(KindLog, ReasonEmptyLog), nil
	}

	err = sink.Attach(ctx, report.Attachment{
		Name:      "log.txt",
		MediaType: report.MediaTypeText,
		Body:      strings.NewReader(text),
	})
	if err != nil {
		err = fmt.Errorf("%w: log: %w", ErrAttach, err)
		return failed(KindLog, err), err
	}
	return attached(KindLog, report.MediaTypeText), nil
}
