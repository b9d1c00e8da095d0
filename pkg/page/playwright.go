package page

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// playwrightSurface adapts a playwright-go page to Surface.
type playwrightSurface struct {
	page playwright.Page
}

// FromPlaywright wraps a playwright page. A nil page yields None.
func FromPlaywright(p playwright.Page) Handle {
	if p == nil {
		return None()
	}
	return Some(&playwrightSurface{page: p})
}

func (s *playwrightSurface) Screenshot(
	_ context.Context,
	path string,
	format Format,
) ([]byte, error) {
	opts := playwright.PageScreenshotOptions{
		Path: playwright.String(path),
		Type: playwright.ScreenshotTypePng,
	}
	if format == FormatJPEG {
		opts.Type = playwright.ScreenshotTypeJpeg
	}
	return s.page.Screenshot(opts)
}

func (s *playwrightSurface) Video() (Video, bool) {
	v := s.page.Video()
	if v == nil {
		return nil, false
	}
	return v, true
}
