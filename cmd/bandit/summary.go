package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gobandit/experiment"
)

// colors returns the Aurora used to color output of cmd
func colors(cmd *cobra.Command) aurora.Aurora {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return aurora.NewAurora(!noColor)
}

// printSummary prints the final value of each agent's learning curve,
// highlighting the agent with the highest final value
func printSummary(w io.Writer, au aurora.Aurora, r experiment.Results) {
	best := 0
	for i := range r.Curves {
		if last(r.Curves[i]) > last(r.Curves[best]) {
			best = i
		}
	}

	fmt.Fprintf(w, "%v (k = %d, %v trials of %v steps)\n",
		au.Bold(fmt.Sprintf("%v bandit", r.Distribution)), r.K, r.Trials,
		r.Steps)
	fmt.Fprintf(w, "  %-32s %.4f\n", "v*", r.Optimal)
	for i, name := range r.Names {
		line := fmt.Sprintf("  %-32s %.4f", name, last(r.Curves[i]))
		if i == best {
			fmt.Fprintln(w, au.Green(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
}

func last(curve []float64) float64 {
	if len(curve) == 0 {
		return 0
	}
	return curve[len(curve)-1]
}
