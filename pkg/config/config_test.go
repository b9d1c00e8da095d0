package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.artifacts/pkg/env"
	"digital.vasic.artifacts/pkg/scenario"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "test-results", cfg.ResultsDir)
	assert.Equal(t, 100, cfg.MaxLogLines)
	assert.Equal(t, "@api", cfg.APITag)
	assert.Equal(t, "localhost", cfg.Report.Host)
	assert.Equal(t, 0, cfg.Report.Port)
	assert.Equal(t, "https://trace.playwright.dev/", cfg.TraceViewerURL)
	assert.NoError(t, cfg.Validate())
}

func TestPaths(t *testing.T) {
	cfg := Default()
	id := scenario.Identity("user-can-register")
	assert.Equal(t,
		filepath.Join("test-results", "screenshots", "user-can-register.png"),
		cfg.ScreenshotPath(id),
	)
	assert.Equal(t,
		filepath.Join("test-results", "logs", "user-can-register", "log.log"),
		cfg.LogPath(id),
	)
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("REPORT_PORT", "9222")

	cfg, err := Parse([]byte(`
results_dir: out
max_log_lines: 50
report:
  port: ${REPORT_PORT}
`))
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.ResultsDir)
	assert.Equal(t, 50, cfg.MaxLogLines)
	assert.Equal(t, 9222, cfg.Report.Port)
	assert.Equal(t, "localhost", cfg.Report.Host)
	assert.Equal(t, "@api", cfg.APITag)
}

func TestParse_EnvDefault(t *testing.T) {
	t.Setenv("REPORT_PORT", "")

	cfg, err := Parse([]byte("report:\n  port: ${REPORT_PORT:-9323}\n"))
	require.NoError(t, err)
	assert.Equal(t, 9323, cfg.Report.Port)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero max lines", "max_log_lines: 0"},
		{"port out of range", "report:\n  port: 70000"},
		{"bad viewer url", "trace_viewer_url: not a url"},
		{"empty api tag", "api_tag: ''"},
		{"bad host", "report:\n  host: 'no spaces allowed'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("results_dir: [unclosed"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts.yaml")
	require.NoError(t, os.WriteFile(
		path, []byte("api_tag: '@headless'\nverbose: true\n"), 0644,
	))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "@headless", cfg.APITag)
	assert.True(t, cfg.Verbose)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	l := env.NewLoaderWithLookup(func(key string) (string, bool) {
		if key == env.ReportPortVar {
			return "9222", true
		}
		return "", false
	})
	cfg, err := FromEnv(l)
	require.NoError(t, err)
	assert.Equal(t, 9222, cfg.Report.Port)
}

func TestFromEnv_Unset(t *testing.T) {
	l := env.NewLoaderWithLookup(func(string) (string, bool) {
		return "", false
	})
	cfg, err := FromEnv(l)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Report.Port)
}

func TestFromEnv_BadPort(t *testing.T) {
	l := env.NewLoaderWithLookup(func(key string) (string, bool) {
		return "abc", true
	})
	_, err := FromEnv(l)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
