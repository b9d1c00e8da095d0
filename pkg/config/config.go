// Package config holds the settings of the artifact subsystem and
// loads them from YAML files with ${VAR} expansion.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a8m/envsubst"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"digital.vasic.artifacts/pkg/env"
	"digital.vasic.artifacts/pkg/scenario"
)

// Defaults.
const (
	DefaultResultsDir     = "test-results"
	DefaultMaxLogLines    = 100
	DefaultAPITag         = "@api"
	DefaultReportHost     = "localhost"
	DefaultTraceViewerURL = "https://trace.playwright.dev/"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid artifact config")

// Config holds runtime configuration for artifact capture.
type Config struct {
	// ResultsDir is the root of the artifact tree.
	ResultsDir string `yaml:"results_dir" validate:"required"`

	// MaxLogLines bounds the attached log excerpt.
	MaxLogLines int `yaml:"max_log_lines" validate:"min=1"`

	// APITag marks scenarios that have no browser surface.
	APITag string `yaml:"api_tag" validate:"required"`

	// Report locates the server that serves trace archives.
	Report Report `yaml:"report"`

	// TraceViewerURL is the external trace viewer the link opens.
	TraceViewerURL string `yaml:"trace_viewer_url" validate:"required,url"`

	// Verbose enables debug entries in scenario logs.
	Verbose bool `yaml:"verbose"`
}

// Report is the address of the report server.
type Report struct {
	Host string `yaml:"host" validate:"required,hostname_rfc1123|ip"`

	// Port is zero until configured; trace links need it.
	Port int `yaml:"port" validate:"min=0,max=65535"`
}

// Default returns a Config with the conventional layout.
func Default() Config {
	return Config{
		ResultsDir:     DefaultResultsDir,
		MaxLogLines:    DefaultMaxLogLines,
		APITag:         DefaultAPITag,
		Report:         Report{Host: DefaultReportHost},
		TraceViewerURL: DefaultTraceViewerURL,
	}
}

// Load reads a YAML file, expands ${VAR} references against the
// process environment and validates the result. Keys missing from
// the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config content.
func Parse(data []byte) (Config, error) {
	expanded, err := envsubst.Bytes(data)
	if err != nil {
		return Config{}, fmt.Errorf("expand config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv returns the defaults with the report port taken from
// REPORT_PORT.
func FromEnv(l env.Loader) (Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(l); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides the report port when REPORT_PORT is set.
func (c *Config) ApplyEnv(l env.Loader) error {
	port, ok, err := l.GetInt(env.ReportPortVar)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if ok {
		c.Report.Port = port
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ScreenshotPath is where a scenario's screenshot is written:
// <results>/screenshots/<identity>.png.
func (c Config) ScreenshotPath(id scenario.Identity) string {
	return filepath.Join(c.ResultsDir, "screenshots", id.String()+".png")
}

// LogPath is the scenario's log file:
// <results>/logs/<identity>/log.log.
func (c Config) LogPath(id scenario.Identity) string {
	return filepath.Join(c.ResultsDir, "logs", id.String(), "log.log")
}
