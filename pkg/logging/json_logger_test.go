package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.artifacts/pkg/scenario"
)

func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func TestJSONLogger_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "test.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelDebug,
		Verbose:    true,
	})
	require.NoError(t, err)

	logger.Info("hello", StringField("key", "val"))
	logger.Debug("debug msg")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 2)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "val", entry.Fields["key"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriterLogger(&buf, LoggerConfig{
		Level:   LevelWarn,
		Verbose: true,
	})

	logger.Debug("should not appear")
	logger.Info("should not appear")
	logger.Warn("should appear")
	logger.Error("should appear")

	assert.Len(t, splitNonEmpty(buf.String()), 2)
}

func TestJSONLogger_DebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriterLogger(&buf, LoggerConfig{Level: LevelDebug})
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriterLogger(&buf, LoggerConfig{
		Level:  LevelInfo,
		Fields: map[string]any{"base": "value"},
	})

	child := logger.WithFields(StringField("child", "yes"))
	child.Info("child message")
	logger.Info("parent message")

	lines := splitNonEmpty(buf.String())
	require.Len(t, lines, 2)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "value", entry.Fields["base"])
	assert.Equal(t, "yes", entry.Fields["child"])

	var parent LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &parent))
	assert.Equal(t, "value", parent.Fields["base"])
	assert.NotContains(t, parent.Fields, "child")
}

func TestJSONLogger_ClosedDropsEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriterLogger(&buf, LoggerConfig{Level: LevelInfo})
	child := logger.WithFields(StringField("k", "v"))

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	child.Info("after close")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_MarshalError(t *testing.T) {
	orig := jsonMarshal
	jsonMarshal = func(any) ([]byte, error) {
		return nil, errors.New("marshal failed")
	}
	defer func() { jsonMarshal = orig }()

	var buf bytes.Buffer
	logger := NewJSONWriterLogger(&buf, LoggerConfig{Level: LevelInfo})
	logger.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_BadDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewJSONLogger(LoggerConfig{
		OutputPath: filepath.Join(blocker, "sub", "log.log"),
	})
	assert.Error(t, err)
}

func TestSetupScenarioLogging(t *testing.T) {
	dir := t.TempDir()
	id := scenario.Identity("user-can-register")

	logger, err := SetupScenarioLogging(dir, id, false)
	require.NoError(t, err)
	logger.Info("step passed", IntField("step", 1))
	logger.Debug("hidden without verbose")
	require.NoError(t, logger.Close())

	path := ScenarioLogPath(dir, id)
	assert.Equal(t,
		filepath.Join(dir, "logs", "user-can-register", "log.log"), path,
	)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 1)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "user-can-register", entry.Fields["scenario"])
	assert.EqualValues(t, 1, entry.Fields["step"])
}

func TestSetupScenarioLogging_InvalidIdentity(t *testing.T) {
	_, err := SetupScenarioLogging(t.TempDir(), scenario.Identity("../x"), false)
	assert.ErrorIs(t, err, scenario.ErrInvalidIdentity)
}
