package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.artifacts/pkg/scenario"
)

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
	assert.Equal(t, "UNKNOWN", Level(-1).String())
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, LevelWarn, l)

	l, ok = ParseLevel(" Debug ")
	assert.True(t, ok)
	assert.Equal(t, LevelDebug, l)

	l, ok = ParseLevel("trace")
	assert.False(t, ok)
	assert.Equal(t, LevelInfo, l)
}

func TestFields(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, StringField("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 3}, IntField("n", 3))
	assert.Equal(t,
		Field{Key: "scenario", Value: "login"}, ScenarioField(scenario.Identity("login")),
	)
	assert.Equal(t,
		Field{Key: "error", Value: "boom"}, ErrorField(errors.New("boom")),
	)
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, ErrorField(nil))
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, false, false)

	logger.WithFields(StringField("scenario", "s1")).
		Info("attached", StringField("kind", "log"))
	logger.Debug("hidden")
	logger.Warn("skipped")
	logger.Error("failed")

	out := buf.String()
	assert.Contains(t, out, "[INFO ] attached {kind=log, scenario=s1}")
	assert.Contains(t, out, "[WARN ] skipped")
	assert.Contains(t, out, "[ERROR] failed")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "\033[")
	assert.NoError(t, logger.Close())
}

func TestConsoleLogger_Color(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, true, true)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), colorGray)
	assert.Contains(t, buf.String(), "visible")
}

type closeErrLogger struct {
	NullLogger
	err error
}

func (c closeErrLogger) Close() error { return c.err }

func TestMultiLogger(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMultiLogger(
		NewConsoleLogger(&a, true, false),
		NewConsoleLogger(&b, true, false),
	)

	m.Info("info")
	m.Warn("warn")
	m.Error("error")
	m.Debug("debug")
	m.WithFields(StringField("k", "v")).Info("child")

	for _, out := range []string{a.String(), b.String()} {
		assert.Contains(t, out, "info")
		assert.Contains(t, out, "warn")
		assert.Contains(t, out, "error")
		assert.Contains(t, out, "debug")
		assert.Contains(t, out, "child {k=v}")
	}
	require.NoError(t, m.Close())
}

func TestMultiLogger_CloseJoinsErrors(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")
	m := NewMultiLogger(
		closeErrLogger{err: e1}, NullLogger{}, closeErrLogger{err: e2},
	)
	err := m.Close()
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestNullLogger(t *testing.T) {
	var l Logger = NullLogger{}
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	l.Debug("x")
	assert.Equal(t, NullLogger{}, l.WithFields(StringField("k", "v")))
	assert.NoError(t, l.Close())
}
