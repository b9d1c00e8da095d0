package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"digital.vasic.artifacts/pkg/artifact"
	"digital.vasic.artifacts/pkg/scenario"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <scenario title>",
		Short: "List the files a scenario left in the results directory",
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

			files, err := artifact.Inventory(os.DirFS(cfg.ResultsDir), id)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

