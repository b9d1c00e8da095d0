package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// ConsoleLogger writes human-readable lines, optionally colored.
type ConsoleLogger struct {
	mu      *sync.Mutex
	output  io.Writer
	verbose bool
	color   bool
	fields  map[string]any
}

// NewConsoleLogger creates a console logger writing to w. When
// verbose is true, debug messages are emitted.
func NewConsoleLogger(w io.Writer, verbose, color bool) *ConsoleLogger {
	return &ConsoleLogger{
		mu:      &sync.Mutex{},
		output:  w,
		verbose: verbose,
		color:   color,
		fields:  make(map[string]any),
	}
}

func (c *ConsoleLogger) paint(color, s string) string {
	if !c.color {
		return s
	}
	return color + s + colorReset
}

func (c *ConsoleLogger) log(
	level Level, color, msg string, fields ...Field,
) {
	all := mergeFields(c.fields, fields)

	var fieldStr string
	if len(all) > 0 {
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, all[k]))
		}
		fieldStr = " " + c.paint(
			colorGray, "{"+strings.Join(parts, ", ")+"}",
		)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(
		c.output, "%s [%s] %s%s\n",
		c.paint(colorGray, time.Now().Format("15:04:05")),
		c.paint(color, fmt.Sprintf("%-5s", level.String())),
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, colorBlue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, colorYellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, colorRed, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, colorGray, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields.
func (c *ConsoleLogger) WithFields(fields ...Field) Logger {
	return &ConsoleLogger{
		mu:      c.mu,
		output:  c.output,
		verbose: c.verbose,
		color:   c.color,
		fields:  mergeFields(c.fields, fields),
	}
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
