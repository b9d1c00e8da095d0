package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"digital.vasic.artifacts/pkg/config"
	"digital.vasic.artifacts/pkg/env"
	"digital.vasic.artifacts/pkg/logging"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "artifacts",
		Short: "Inspect per-scenario test artifacts",
		Long: "artifacts classifies scenario outcomes, previews the log excerpt and " +
			"trace link a scenario would attach, lists its files and streams " +
			"new artifacts from the results directory.",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("env-file", ".env", "env file with REPORT_PORT")
	root.PersistentFlags().String("results-dir", "", "override the results directory")
	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	root.PersistentFlags().String("log-file", "", "also write JSON logs to this file")
	root.PersistentFlags().String("log-level", "info", "level of the --log-file entries")

	root.AddCommand(
		newClassifyCmd(),
		newExcerptCmd(),
		newTraceLinkCmd(),
		newAttachCmd(),
		newLsCmd(),
		newMonitorCmd(),
	)
	return root
}

// loadConfig resolves the configuration: defaults or --config, then
// REPORT_PORT from the process environment or --env-file, then
// --results-dir.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	loader := env.NewLoader()
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := loader.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, err
		}
	}

	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(loader); err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("results-dir") {
		cfg.ResultsDir, _ = cmd.Flags().GetString("results-dir")
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

// setupLogger logs to stderr, colored on a terminal, and to
// --log-file when set.
func setupLogger(cmd *cobra.Command, verbose bool) (logging.Logger, error) {
	w := cmd.ErrOrStderr()
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	console := logging.NewConsoleLogger(w, verbose, color)

	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return console, nil
	}
	name, _ := cmd.Flags().GetString("log-level")
	level, ok := logging.ParseLevel(name)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", name)
	}
	file, err := logging.NewJSONLogger(logging.LoggerConfig{
		OutputPath: path,
		Level:      level,
		Verbose:    verbose || level == logging.LevelDebug,
	})
	if err != nil {
		return nil, err
	}
	return logging.NewMultiLogger(console, file), nil
}
