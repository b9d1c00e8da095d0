package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"digital.vasic.artifacts/pkg/logging"
	"digital.vasic.artifacts/pkg/monitor"
)

func newMonitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Stream new artifacts from the results directory over websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")
			logger, err := setupLogger(cmd, cfg.Verbose)
			if err != nil {
				return err
			}
			defer logger.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runMonitor(ctx, cfg.ResultsDir, addr, logger)
		},
	}
	cmd.Flags().String("addr", "localhost:9324", "listen address")
	return cmd
}

func runMonitor(ctx context.Context, resultsDir, addr string, logger logging.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	collector := monitor.NewEventCollector()
	server := monitor.NewServer(addr, collector, monitor.NewDashboard(), logger)
	watcher := monitor.NewWatcher(resultsDir, collector, logger)

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- watcher.Run(ctx)
		cancel()
	}()

	logger.Info("watching results", logging.StringField("dir", resultsDir))
	serveErr := server.Start(ctx)
	cancel()
	if err := <-watchErr; err != nil {
		return err
	}
	return serveErr
}
