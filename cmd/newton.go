package cmd

import (
	"github.com/spf13/cobra"

	"github.com/numkit/rootfind/problems"
	"github.com/numkit/rootfind/scalar"
)

// newtonCmd represents the newton command
var newtonCmd = &cobra.Command{
	Use:   "newton",
	Short: "solves 3x - cos(x) - 2 = 0 from 8.75 by Newton's method",
	RunE:  cmdNewton,
}

func init() {
	rootCmd.AddCommand(newtonCmd)
}

func cmdNewton(cmd *cobra.Command, args []string) error {
	var trace []scalar.Iteration
	res, err := scalar.Newton(problems.NewtonF, problems.NewtonDF, problems.ScalarStart, scalarOptions(&trace)...)
	if err != nil {
		return err
	}
	printScalar(cmd, "Newton's method", res)
	return writeTrace(trace)
}
