package artifact

import "digital.vasic.artifacts/pkg/logging"

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used to record skipped and failed
// stages.
func WithLogger(logger logging.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithObserver adds an observer notified about every stage.
func WithObserver(o Observer) ManagerOption {
	return func(m *Manager) {
		m.observers = append(m.observers, o)
	}
}
