// Package page defines the browser page surface the artifact
// subsystem captures evidence from. A surface is optional: API-only
// scenarios and sessions torn down early have none, and every
// consumer must branch on Handle.Get before using one.
package page

import "context"

// Format is a screenshot image format.
type Format string

// Supported screenshot formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// Surface is an active browser page.
type Surface interface {
	// Screenshot captures the page, writes the image to path and
	// returns the encoded bytes.
	Screenshot(ctx context.Context, path string, format Format) ([]byte, error)

	// Video returns the page's recording, if video recording is
	// enabled for the session.
	Video() (Video, bool)
}

// Video is a recorded page video.
type Video interface {
	// Path resolves the on-disk location of the recording.
	Path() (string, error)
}

// Handle is an optional Surface.
type Handle struct {
	surface Surface
}

// Some wraps an active surface. A nil surface yields None.
func Some(s Surface) Handle {
	return Handle{surface: s}
}

// None is the absent surface.
func None() Handle {
	return Handle{}
}

// Get returns the surface and whether one is present.
func (h Handle) Get() (Surface, bool) {
	return h.surface, h.surface != nil
}

// Present reports whether the handle holds a surface.
func (h Handle) Present() bool {
	return h.surface != nil
}
