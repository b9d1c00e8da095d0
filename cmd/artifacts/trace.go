package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/scenario"
)

func newTraceLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace-link <scenario title>",
		Short: "Print the trace viewer link of a scenario",
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

			linker := artifact.NewTraceLinker(cfg.Report.Host, cfg.Report.Port, cfg.TraceViewerURL)
			file, err := linker.FileURL(id)
			if err != nil {
				return err
			}
			viewer, err := linker.ViewerURL(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "file:    %s\nviewer:  %s\n", file, viewer)
			return nil
		},
	}
}
