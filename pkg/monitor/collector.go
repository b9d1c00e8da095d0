package monitor

import (
	"sync"
	"time"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/scenario"
)

// EventCollector records artifact events and fans them out to
// handlers. It implements artifact.Observer.
type EventCollector struct {
	mu       sync.RWMutex
	events   []ArtifactEvent
	handlers []func(ArtifactEvent)
	stats    CollectorStats
}

// CollectorStats holds aggregate counts.
type CollectorStats struct {
	Total     int       `json:"total"`
	Decided   int       `json:"decided"`
	Attached  int       `json:"attached"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	Files     int       `json:"files"`
	StartTime time.Time `json:"start_time"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]ArtifactEvent, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(ArtifactEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event ArtifactEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.stats.Total++
	switch event.Type {
	case EventDecided:
		c.stats.Decided++
	case EventAttached:
		c.stats.Attached++
	case EventSkipped:
		c.stats.Skipped++
	case EventFailed:
		c.stats.Failed++
	case EventFile:
		c.stats.Files++
	}
	handlers := make([]func(ArtifactEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

func (c *EventCollector) Decided(id scenario.Identity, d artifact.Decision) {
	c.Emit(ArtifactEvent{
		Type:         EventDecided,
		Scenario:     id.String(),
		CaptureMedia: d.CaptureMedia,
		CaptureTrace: d.CaptureTrace,
	})
}

func (c *EventCollector) Attached(id scenario.Identity, kind artifact.Kind, mediaType string) {
	c.Emit(ArtifactEvent{
		Type:      EventAttached,
		Scenario:  id.String(),
		Kind:      string(kind),
		MediaType: mediaType,
	})
}

func (c *EventCollector) Skipped(id scenario.Identity, kind artifact.Kind, reason string) {
	c.Emit(ArtifactEvent{
		Type:     EventSkipped,
		Scenario: id.String(),
		Kind:     string(kind),
		Reason:   reason,
	})
}

func (c *EventCollector) Failed(id scenario.Identity, kind artifact.Kind, err error) {
	event := ArtifactEvent{
		Type:     EventFailed,
		Scenario: id.String(),
		Kind:     string(kind),
	}
	if err != nil {
		event.Message = err.Error()
	}
	c.Emit(event)
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []ArtifactEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]ArtifactEvent, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = CollectorStats{StartTime: time.Now()}
}
