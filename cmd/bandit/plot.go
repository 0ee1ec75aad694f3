package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gobandit/experiment"
)

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot <data> <output>",
		Short: "Plot learning curves saved by a previous run",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := experiment.Load(args[0])
			if err != nil {
				return err
			}

			if err := makeParent(args[1]); err != nil {
				return err
			}
			if err := results.Plot(args[1]); err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), colors(cmd), results)
			fmt.Fprintln(cmd.OutOrStdout(), colors(cmd).Green(fmt.Sprintf(
				"plotted %d curves to %v", len(results.Curves), args[1])))
			return nil
		},
	}
}
