package artifact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"digital.vasic.artifacts/pkg/page"
	"digital.vasic.artifacts/pkg/report"
)

// MediaAttacher pushes the held screenshot and the page's recorded
// video into the report. The two halves are independent. Callers
// gate the call on Decision.CaptureMedia.
type MediaAttacher struct {
	name string
}

// NewMediaAttacher creates an attacher naming attachments after
// the scenario.
func NewMediaAttacher(name string) MediaAttacher {
	return MediaAttacher{name: name}
}

// Attach attaches screenshot (when non-empty) and the page video
// (when a page with a recording is present). Only sink failures are
// returned as errors.
func (a MediaAttacher) Attach(
	ctx context.Context,
	screenshot []byte,
	h page.Handle,
	sink report.Sink,
) ([]Outcome, error) {
	var errs []error
	outcomes := make([]Outcome, 0, 2)

	shot, err := a.attachScreenshot(ctx, screenshot, sink)
	outcomes = append(outcomes, shot)
	if err != nil {
		errs = append(errs, err)
	}

	video, err := a.attachVideo(ctx, h, sink)
	outcomes = append(outcomes, video)
	if err != nil {
		errs = append(errs, err)
	}

	return outcomes, errors.Join(errs...)
}

func (a MediaAttacher) attachScreenshot(
	ctx context.Context,
	screenshot []byte,
	sink report.Sink,
) (Outcome, error) {
	if len(screenshot) == 0 {
		return skipped(KindScreenshot, ReasonNoScreenshot), nil
	}

	err := sink.Attach(ctx, report.Attachment{
		Name:      a.name + ".png",
		MediaType: report.MediaTypePNG,
		Body:      bytes.NewReader(screenshot),
	})
	if err != nil {
		err = fmt.Errorf("%w: screenshot: %w", ErrAttach, err)
		return failed(KindScreenshot, err), err
	}
	return attached(KindScreenshot, report.MediaTypePNG), nil
}

func (a MediaAttacher) attachVideo(
	ctx context.Context,
	h page.Handle,
	sink report.Sink,
) (Outcome, error) {
	surface, ok := h.Get()
	if !ok {
		return skipped(KindVideo, ReasonNoPage), nil
	}
	video, ok := surface.Video()
	if !ok {
		return skipped(KindVideo, ReasonNoVideo), nil
	}
	path, err := video.Path()
	if err != nil || path == "" {
		return skipped(KindVideo, ReasonNoVideo), nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return skipped(KindVideo, ReasonNoVideo), nil
	}
	if err != nil {
		return failed(KindVideo, fmt.Errorf("open video: %w", err)), nil
	}
	defer f.Close()

	err = sink.Attach(ctx, report.Attachment{
		Name:      a.name + ".webm",
		MediaType: report.MediaTypeWebM,
		Body:      f,
	})
	if err != nil {
		err = fmt.Errorf("%w: video: %w", ErrAttach, err)
		return failed(KindVideo, err), err
	}
	return attached(KindVideo, report.MediaTypeWebM), nil
}
