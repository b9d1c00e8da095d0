// Package scenario describes a finished end-to-end scenario: its
// outcome, its tags, and the filesystem-safe identity used to
// namespace every artifact it produces.
package scenario

import (
	"fmt"
	"strings"
)

// Status is the final outcome of a scenario. The set is closed;
// values outside the declared constants are invalid.
type Status int

// Status values, mirroring the Cucumber result vocabulary.
const (
	StatusUnknown Status = iota
	StatusPassed
	StatusSkipped
	StatusPending
	StatusUndefined
	StatusAmbiguous
	StatusFailed
)

var statusNames = map[Status]string{
	StatusUnknown:   "unknown",
	StatusPassed:    "passed",
	StatusSkipped:   "skipped",
	StatusPending:   "pending",
	StatusUndefined: "undefined",
	StatusAmbiguous: "ambiguous",
	StatusFailed:    "failed",
}

// String returns the lower-case name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Valid reports whether s is one of the declared constants.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus converts a status name (case-insensitive) into a
// Status.
func ParseStatus(name string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range statusNames {
		if n == key {
			return s, nil
		}
	}
	return StatusUnknown, fmt.Errorf("unknown scenario status %q", name)
}

// Statuses returns every declared status in declaration order.
func Statuses() []Status {
	return []Status{
		StatusUnknown,
		StatusPassed,
		StatusSkipped,
		StatusPending,
		StatusUndefined,
		StatusAmbiguous,
		StatusFailed,
	}
}
