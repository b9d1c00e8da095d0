package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/scenario"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show what a scenario outcome captures",
		Args:  cobra.NoArgs,
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

			d := artifact.Classify(status, scenario.NewTags(tags...), cfg.APITag)
			fmt.Fprintf(cmd.OutOrStdout(), "status:  %s\nmedia:   %t\ntrace:   %t\n",
				status, d.CaptureMedia, d.CaptureTrace)
			return nil
		},
	}
	cmd.Flags().String("status", "passed", "scenario status")
	cmd.Flags().StringSlice("tag", nil, "scenario tag, repeatable")
	return cmd
}
