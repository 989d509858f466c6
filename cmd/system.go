package cmd

import (
	"github.com/spf13/cobra"

	"github.com/numkit/rootfind/problems"
	"github.com/numkit/rootfind/system"
)

// systemCmd represents the system command
var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "solves sin(x+1) - y = 1.2, 2x + cos(y) = 2 from (0.8, 0.8) by both system methods",
	RunE:  cmdSystem,
}

func init() {
	rootCmd.AddCommand(systemCmd)
}

func cmdSystem(cmd *cobra.Command, args []string) error {
	var trace []system.Iteration
	res, err := system.Newton(problems.Trig(), problems.SystemStartX, problems.SystemStartY, systemOptions(&trace)...)
	if err != nil {
		return err
	}
	printSystem(cmd, "Newton's method for the system", res)

	trace = trace[:0]
	res, err = system.FixedPoint(problems.TrigG1, problems.TrigG2, problems.SystemStartX, problems.SystemStartY, systemOptions(&trace)...)
	if err != nil {
		return err
	}
	printSystem(cmd, "Fixed-point iteration for the system", res)
	return writeTrace(trace)
}
