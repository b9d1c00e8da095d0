// Package monitor turns artifact activity into a live event feed:
// observer notifications from artifact managers and files appearing
// under the results tree, broadcast to websocket clients.
package monitor

import "time"

// EventType represents the type of artifact event.
type EventType string

const (
	EventDecided  EventType = "decided"
	EventAttached EventType = "attached"
	EventSkipped  EventType = "skipped"
	EventFailed   EventType = "failed"
	EventFile     EventType = "file"
)

// ArtifactEvent is one entry in the feed.
type ArtifactEvent struct {
	Type         EventType `json:"type"`
	Scenario     string    `json:"scenario"`
	Kind         string    `json:"kind,omitempty"`
	MediaType    string    `json:"media_type,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	Message      string    `json:"message,omitempty"`
	Path         string    `json:"path,omitempty"`
	CaptureMedia bool      `json:"capture_media,omitempty"`
	CaptureTrace bool      `json:"capture_trace,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
