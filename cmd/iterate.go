package cmd

import (
	"github.com/spf13/cobra"

	"github.com/numkit/rootfind/problems"
	"github.com/numkit/rootfind/scalar"
)

// iterateCmd represents the iterate command
var iterateCmd = &cobra.Command{
	Use:   "iterate",
	Short: "solves x = (cos(x)+2)/3 from 8.75 by fixed-point iteration",
	RunE:  cmdIterate,
}

func init() {
	rootCmd.AddCommand(iterateCmd)
}

func cmdIterate(cmd *cobra.Command, args []string) error {
	var trace []scalar.Iteration
	res, err := scalar.FixedPoint(problems.IterG, problems.ScalarStart, scalarOptions(&trace)...)
	if err != nil {
		return err
	}
	printScalar(cmd, "Simple iteration", res)
	return writeTrace(trace)
}
