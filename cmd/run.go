package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "runs every demonstration task in its original order",
	RunE:  cmdRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func cmdRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Task 1")
	if err := cmdBisect(cmd, nil); err != nil {
		return err
	}

	fmt.Fprintln(out, "Task 2")
	if err := cmdIterate(cmd, nil); err != nil {
		return err
	}
	if err := cmdNewton(cmd, nil); err != nil {
		return err
	}

	// the original task numbering skips Task 3
	fmt.Fprintln(out, "Task 4")
	return cmdSystem(cmd, nil)
}
