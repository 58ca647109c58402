package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glbridge-dev/glbridge/internal/config"
)

func newInitCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter glbridge.yaml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "glbridge.yaml"
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.Default(period)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s; set eligibility_cutoff and the mapping paths before running generate\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "accounting period, e.g. 202412")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}
