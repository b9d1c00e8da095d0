package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.artifacts/pkg/logging"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestClassify(t *testing.T) {
	t.Setenv("REPORT_PORT", "9323")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"failed", []string{"--status", "failed"}, "media:   true\ntrace:   true"},
		{"api", []string{"--status", "passed", "--tag", "@api"}, "media:   false\ntrace:   true"},
		{"skipped", []string{"--status", "skipped"}, "media:   false\ntrace:   false"},
		{"ambiguous", []string{"--status", "Ambiguous"}, "media:   false\ntrace:   true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"classify"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestClassify_UnknownStatus(t *testing.T) {
	_, _, err := execute(t, "classify", "--status", "flaky")
	assert.Error(t, err)
}

func TestExcerpt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "logs", "login-works", "log.log"), "a\nb\nc\nd\n")

	out, _, err := execute(t, "excerpt", "Login works", "--results-dir", dir, "--max-lines", "2")
	require.NoError(t, err)
	assert.Equal(t, "Logs (2/5 lines):\na\nb\n[Log truncated due to excessive length]\n", out)
}

func TestExcerpt_MissingLog(t *testing.T) {
	out, errOut, err := execute(t, "excerpt", "Nothing here", "--results-dir", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "no_log_file")
}

func TestTraceLink(t *testing.T) {
	t.Setenv("REPORT_PORT", "9323")

	out, _, err := execute(t, "trace-link", "Login works")
	require.NoError(t, err)
	assert.Contains(t, out, "file:    http://localhost:9323/trace/login-works.zip")
	assert.Contains(t, out, "viewer:  https://trace.playwright.dev/?trace=")
}

func TestTraceLink_NoPort(t *testing.T) {
	t.Setenv("REPORT_PORT", "")

	_, _, err := execute(t, "trace-link", "Login works", "--env-file", "")
	assert.Error(t, err)
}

func TestTraceLink_EnvFile(t *testing.T) {
	t.Setenv("REPORT_PORT", "")
	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "export REPORT_PORT=7000\n")

	out, _, err := execute(t, "trace-link", "Login works", "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, out, "http://localhost:7000/trace/login-works.zip")
}

func TestConfigFile(t *testing.T) {
	t.Setenv("REPORT_PORT", "")
	path := filepath.Join(t.TempDir(), "artifacts.yaml")
	writeFile(t, path, "report:\n  host: reports.internal\n  port: 8080\n")

	out, _, err := execute(t, "trace-link", "Login works", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "http://reports.internal:8080/trace/login-works.zip")
}

func TestConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts.yaml")
	writeFile(t, path, "max_log_lines: 0\n")

	_, _, err := execute(t, "classify", "--config", path)
	assert.Error(t, err)
}

func TestAttach(t *testing.T) {
	t.Setenv("REPORT_PORT", "9323")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "logs", "checkout", "log.log"), "step one\nstep two\n")

	out, _, err := execute(t, "attach", "Checkout", "--results-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Logs (3/3 lines):\nstep one\nstep two\n")
	assert.Contains(t, out, `Trace file: <a href="`)
	assert.Contains(t, out, "Open /trace/checkout</a>")
}

func TestAttach_Pending(t *testing.T) {
	t.Setenv("REPORT_PORT", "9323")

	out, _, err := execute(t, "attach", "Later", "--status", "pending", "--results-dir", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "screenshots", "login.png"), "png")
	writeFile(t, filepath.Join(dir, "logs", "login", "log.log"), "x")
	writeFile(t, filepath.Join(dir, "screenshots", "logout.png"), "png")

	out, _, err := execute(t, "ls", "Login", "--results-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"logs/login/log.log", "screenshots/login.png"},
		strings.Fields(out))
}

func TestLs_InvalidTitle(t *testing.T) {
	_, _, err := execute(t, "ls", "??", "--results-dir", t.TempDir())
	assert.Error(t, err)
}

func TestRunMonitor_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := filepath.Join(t.TempDir(), "results")
	err := runMonitor(ctx, dir, "127.0.0.1:0", logging.NullLogger{})
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAttach_LogFile(t *testing.T) {
	t.Setenv("REPORT_PORT", "9323")
	dir := t.TempDir()
	logFile := filepath.Join(dir, "run", "artifacts.jsonl")

	_, errOut, err := execute(t, "attach", "Checkout", "--results-dir", dir,
		"--log-file", logFile, "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"artifact skipped"`)
	assert.Contains(t, string(data), `"reason":"no_page"`)
	assert.Contains(t, string(data), `"message":"artifact attached"`)
	assert.NotContains(t, errOut, "artifact skipped")
}

func TestAttach_UnknownLogLevel(t *testing.T) {
	_, _, err := execute(t, "attach", "Checkout", "--results-dir", t.TempDir(),
		"--log-file", filepath.Join(t.TempDir(), "x.jsonl"), "--log-level", "loud")
	assert.Error(t, err)
}
