package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"digital.vasic.artifacts/pkg/page"
)

// ScreenshotCapturer takes the scenario screenshot and holds its
// bytes until the media attacher consumes them.
type ScreenshotCapturer struct {
	path string
	data []byte
}

// NewScreenshotCapturer creates a capturer writing to path.
func NewScreenshotCapturer(path string) *ScreenshotCapturer {
	return &ScreenshotCapturer{path: path}
}

// Capture screenshots the page when one is present. Without a page
// it does nothing.
func (c *ScreenshotCapturer) Capture(ctx context.Context, h page.Handle) Outcome {
	surface, ok := h.Get()
	if !ok {
		return skipped(KindScreenshot, ReasonNoPage)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return failed(KindScreenshot, fmt.Errorf(
			"create screenshot directory: %w", err,
		))
	}

	data, err := surface.Screenshot(ctx, c.path, page.FormatPNG)
	if err != nil {
		return failed(KindScreenshot, fmt.Errorf(
			"screenshot %s: %w", c.path, err,
		))
	}
	c.data = data
	return Outcome{Kind: KindScreenshot, State: StateCaptured}
}

// Bytes returns the held screenshot, if any.
func (c *ScreenshotCapturer) Bytes() ([]byte, bool) {
	return c.data, len(c.data) > 0
}

// Path returns where the screenshot is written.
func (c *ScreenshotCapturer) Path() string {
	return c.path
}

// Discard drops the held bytes.
func (c *ScreenshotCapturer) Discard() {
	c.data = nil
}
