package main

import (
	"github.com/spf13/cobra"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/page"
	"digital.vasic.artifacts/pkg/report"
	"digital.vasic.artifacts/pkg/scenario"
)

func newAttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach <scenario title>",
		Short: "Run the artifact phase of a finished scenario without a browser",
		Long: "Runs the artifact phase for a scenario whose browser is gone and " +
			"prints every attachment. Screenshot and video are reported as skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("status")
			status, err := scenario.ParseStatus(name)
			if err != nil {
				return err
			}
			tags, _ := cmd.Flags().GetStringSlice("tag")

			desc, err := scenario.NewDescriptor(args[0], status, tags...)
			if err != nil {
				return err
			}
			logger, err := setupLogger(cmd, cfg.Verbose)
			if err != nil {
				return err
			}
			defer logger.Close()

			m, err := artifact.NewManager(desc, cfg, artifact.WithLogger(logger))
			if err != nil {
				return err
			}
			return m.Run(cmd.Context(), page.None(), report.NewWriterSink(cmd.OutOrStdout()))
		},
	}
	cmd.Flags().String("status", "failed", "scenario status")
	cmd.Flags().StringSlice("tag", nil, "scenario tag, repeatable")
	return cmd
}
