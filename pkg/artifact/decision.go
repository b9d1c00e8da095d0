// Package artifact decides which evidence a finished scenario
// attaches to its report and attaches it best-effort: screenshot,
// video, log excerpt and trace-viewer link.
package artifact

import "digital.vasic.artifacts/pkg/scenario"

// Decision records what a scenario captures. It is computed once
// per scenario.
type Decision struct {
	CaptureMedia bool `json:"capture_media"`
	CaptureTrace bool `json:"capture_trace"`
}

// Classify maps a scenario outcome to a Decision. Media is captured
// for passed, failed and unknown scenarios not tagged apiTag. A
// trace is linked for every outcome except pending and skipped.
// Status values outside the declared set capture nothing.
func Classify(status scenario.Status, tags scenario.Tags, apiTag string) Decision {
	hasSurface := !tags.Has(apiTag)

	switch status {
	case scenario.StatusPassed, scenario.StatusFailed, scenario.StatusUnknown:
		return Decision{CaptureMedia: hasSurface, CaptureTrace: true}
	case scenario.StatusUndefined, scenario.StatusAmbiguous:
		return Decision{CaptureMedia: false, CaptureTrace: true}
	case scenario.StatusPending, scenario.StatusSkipped:
		return Decision{CaptureMedia: false, CaptureTrace: false}
	}
	return Decision{}
}
