package monitor

import (
	"sort"
	"sync"
	"time"
)

// ScenarioState is the artifact picture of one scenario.
type ScenarioState struct {
	Scenario     string            `json:"scenario"`
	CaptureMedia bool              `json:"capture_media"`
	CaptureTrace bool              `json:"capture_trace"`
	Attached     map[string]string `json:"attached,omitempty"`
	Skipped      map[string]string `json:"skipped,omitempty"`
	Failed       map[string]string `json:"failed,omitempty"`
	Files        []string          `json:"files,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Dashboard aggregates events per scenario.
type Dashboard struct {
	mu        sync.RWMutex
	startTime time.Time
	scenarios map[string]*ScenarioState
}

// DashboardSnapshot is a point-in-time copy of a Dashboard.
type DashboardSnapshot struct {
	StartTime time.Time       `json:"start_time"`
	Scenarios []ScenarioState `json:"scenarios"`
}

// NewDashboard creates an empty dashboard.
func NewDashboard() *Dashboard {
	return &Dashboard{
		startTime: time.Now(),
		scenarios: make(map[string]*ScenarioState),
	}
}

// Update folds an event into the scenario it belongs to.
func (d *Dashboard) Update(event ArtifactEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	state, ok := d.scenarios[event.Scenario]
	if !ok {
		state = &ScenarioState{
			Scenario: event.Scenario,
			Attached: make(map[string]string),
			Skipped:  make(map[string]string),
			Failed:   make(map[string]string),
		}
		d.scenarios[event.Scenario] = state
	}

	switch event.Type {
	case EventDecided:
		state.CaptureMedia = event.CaptureMedia
		state.CaptureTrace = event.CaptureTrace
	case EventAttached:
		state.Attached[event.Kind] = event.MediaType
	case EventSkipped:
		state.Skipped[event.Kind] = event.Reason
	case EventFailed:
		state.Failed[event.Kind] = event.Message
	case EventFile:
		state.Files = append(state.Files, event.Path)
	}
	state.UpdatedAt = event.Timestamp
}

// Snapshot returns the dashboard sorted by scenario.
func (d *Dashboard) Snapshot() DashboardSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snap := DashboardSnapshot{
		StartTime: d.startTime,
		Scenarios: make([]ScenarioState, 0, len(d.scenarios)),
	}
	for _, s := range d.scenarios {
		c := *s
		c.Attached = copyMap(s.Attached)
		c.Skipped = copyMap(s.Skipped)
		c.Failed = copyMap(s.Failed)
		c.Files = append([]string(nil), s.Files...)
		snap.Scenarios = append(snap.Scenarios, c)
	}
	sort.Slice(snap.Scenarios, func(i, j int) bool {
		return snap.Scenarios[i].Scenario < snap.Scenarios[j].Scenario
	})
	return snap
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
