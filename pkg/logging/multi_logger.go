package logging

import "errors"

// MultiLogger writes every entry to several loggers, e.g. the
// console and a run log file.
type MultiLogger struct {
	loggers []Logger
}

func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (m *MultiLogger) each(fn func(Logger)) {
	for _, l := range m.loggers {
		fn(l)
	}
}

func (m *MultiLogger) Info(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Info(msg, fields...) })
}

func (m *MultiLogger) Warn(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Warn(msg, fields...) })
}

func (m *MultiLogger) Error(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Error(msg, fields...) })
}

func (m *MultiLogger) Debug(msg string, fields ...Field) {
	m.each(func(l Logger) { l.Debug(msg, fields...) })
}

func (m *MultiLogger) WithFields(fields ...Field) Logger {
	derived := make([]Logger, 0, len(m.loggers))
	m.each(func(l Logger) { derived = append(derived, l.WithFields(fields...)) })
	return &MultiLogger{loggers: derived}
}

// Close closes every logger and joins their errors.
func (m *MultiLogger) Close() error {
	var errs []error
	m.each(func(l Logger) { errs = append(errs, l.Close()) })
	return errors.Join(errs...)
}
