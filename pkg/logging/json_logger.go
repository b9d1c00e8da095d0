package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"digital.vasic.artifacts/pkg/scenario"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the log file. Empty means stdout.
	OutputPath string
	Level      Level
	Verbose    bool
	Fields     map[string]any
}

// JSONLogger writes one JSON object per line. Loggers derived with
// WithFields share the writer and the lock of their parent.
type JSONLogger struct {
	shared  *jsonOutput
	level   Level
	fields  map[string]any
	verbose bool
}

type jsonOutput struct {
	mu     sync.Mutex
	w      io.Writer
	closed bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, logs are written to stdout.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	out := &jsonOutput{w: os.Stdout}

	if config.OutputPath != "" {
		dir := filepath.Dir(config.OutputPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf(
				"failed to create log directory: %w", err,
			)
		}
		file, err := os.OpenFile(
			config.OutputPath,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to open log file: %w", err,
			)
		}
		out.w = file
	}

	return newJSONLogger(out, config), nil
}

// NewJSONWriterLogger creates a JSON logger writing to w.
func NewJSONWriterLogger(w io.Writer, config LoggerConfig) *JSONLogger {
	return newJSONLogger(&jsonOutput{w: w}, config)
}

func newJSONLogger(out *jsonOutput, config LoggerConfig) *JSONLogger {
	fields := config.Fields
	if fields == nil {
		fields = make(map[string]any)
	}
	return &JSONLogger{
		shared:  out,
		level:   config.Level,
		verbose: config.Verbose,
		fields:  fields,
	}
}

func (l *JSONLogger) log(
	level Level, msg string, fields ...Field,
) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    mergeFields(l.fields, fields),
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	if l.shared.closed {
		return
	}
	fmt.Fprintln(l.shared.w, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	return &JSONLogger{
		shared:  l.shared,
		level:   l.level,
		verbose: l.verbose,
		fields:  mergeFields(l.fields, fields),
	}
}

// Close flushes and closes the underlying file. Writing to stdout
// or a caller-supplied writer that is not a file is left open.
func (l *JSONLogger) Close() error {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()

	if l.shared.closed {
		return nil
	}
	l.shared.closed = true

	if f, ok := l.shared.w.(*os.File); ok && f != os.Stdout {
		return f.Close()
	}
	return nil
}

// ScenarioLogPath returns the log file a scenario writes to:
// <resultsDir>/logs/<identity>/log.log.
func ScenarioLogPath(resultsDir string, id scenario.Identity) string {
	return filepath.Join(resultsDir, "logs", id.String(), "log.log")
}

// SetupScenarioLogging opens the per-scenario log file. Every entry
// carries the scenario identity.
func SetupScenarioLogging(
	resultsDir string,
	id scenario.Identity,
	verbose bool,
) (*JSONLogger, error) {
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("scenario log: %w", err)
	}

	config := LoggerConfig{
		OutputPath: ScenarioLogPath(resultsDir, id),
		Level:      LevelInfo,
		Verbose:    verbose,
		Fields:     map[string]any{"scenario": id.String()},
	}
	if verbose {
		config.Level = LevelDebug
	}

	return NewJSONLogger(config)
}
