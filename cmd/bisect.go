package cmd

import (
	"github.com/spf13/cobra"

	"github.com/numkit/rootfind/problems"
	"github.com/numkit/rootfind/scalar"
)

// bisectCmd represents the bisect command
var bisectCmd = &cobra.Command{
	Use:   "bisect",
	Short: "finds a root of 2*log10(d) - d/2 + 1 on [0.1, 6.2] by bisection",
	RunE:  cmdBisect,
}

func init() {
	rootCmd.AddCommand(bisectCmd)
}

func cmdBisect(cmd *cobra.Command, args []string) error {
	var trace []scalar.Iteration
	res, err := scalar.Bisect(problems.BisectF, problems.BisectLeft, problems.BisectRight, scalarOptions(&trace)...)
	if err != nil {
		return err
	}
	printScalar(cmd, "Bisection", res)
	return writeTrace(trace)
}
