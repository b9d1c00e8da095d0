// Package logging provides structured logging for scenario runs:
// a JSON Lines writer for the per-scenario log file, a console
// logger for tools, and fan-out and no-op variants.
package logging

import "strings"

// Logger is the structured logger every package writes to.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)

	// WithFields returns a Logger that adds fields to every entry.
	WithFields(fields ...Field) Logger

	// Close flushes and releases the destination. Loggers derived
	// with WithFields share it.
	Close() error
}

// Level is the severity of an entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel returns the level named name, case-insensitively.
// Unknown names yield LevelInfo and false.
func ParseLevel(name string) (Level, bool) {
	for i, n := range levelNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Level(i), true
		}
	}
	return LevelInfo, false
}

func mergeFields(base map[string]any, fields []Field) map[string]any {
	out := make(map[string]any, len(base)+len(fields))
	for k, v := range base {
		out[k] = v
	}
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

// NullLogger discards everything.
type NullLogger struct{}

func (NullLogger) Info(string, ...Field)      {}
func (NullLogger) Warn(string, ...Field)      {}
func (NullLogger) Error(string, ...Field)     {}
func (NullLogger) Debug(string, ...Field)     {}
func (NullLogger) WithFields(...Field) Logger { return NullLogger{} }
func (NullLogger) Close() error               { return nil }
