package main

import (
	"github.com/spf13/cobra"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/report"
	"digital.vasic.artifacts/pkg/scenario"
)

func newExcerptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excerpt <scenario title>",
		Short: "Print the log excerpt a scenario attaches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			id, err := scenario.NewIdentity(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-lines") {
				cfg.MaxLogLines, _ = cmd.Flags().GetInt("max-lines")
			}

			logs := artifact.NewLogAttacher(cfg.LogPath(id), cfg.MaxLogLines)
			outcome, err := logs.Attach(cmd.Context(), report.NewWriterSink(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			if outcome.State == artifact.StateSkipped {
				cmd.PrintErrf("no log for %s: %s\n", id, outcome.Reason)
			}
			return nil
		},
	}
	cmd.Flags().Int("max-lines", artifact.DefaultMaxLogLines, "lines kept from the start of the log")
	return cmd
}
