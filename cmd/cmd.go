// Package cmd is the CLI tool running the rootfind demonstration tasks
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/numkit/rootfind/encoding"
	"github.com/numkit/rootfind/scalar"
	"github.com/numkit/rootfind/system"
)

var rootCmd = &cobra.Command{
	Use:   "rootfind",
	Short: "demonstrates classical root-finding numerical methods",
	Long: `rootfind demonstrates classical root-finding numerical methods: bisection,
fixed-point (simple) iteration and Newton's method for a single equation, and
Newton / fixed-point iteration for a 2x2 nonlinear system. Each method runs
against a fixed textbook problem instance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	fTolerance     float64
	fMaxIterations int
	fTracePath     string
	fVerbose       bool
)

func init() {
	rootCmd.PersistentFlags().Float64Var(&fTolerance, "tolerance", 0, "convergence tolerance, 0 selects the method default")
	rootCmd.PersistentFlags().IntVar(&fMaxIterations, "max-iterations", 0, "iteration budget, 0 selects the default")
	rootCmd.PersistentFlags().StringVar(&fTracePath, "trace", "", "write the CBOR iteration trace of the last solver run to this file")
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "log solver progress")

	cobra.OnInitialize(func() {
		if fVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	})
}

// Execute runs the rootfind command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func scalarOptions(trace *[]scalar.Iteration) []scalar.Option {
	var opts []scalar.Option
	if fTolerance > 0 {
		opts = append(opts, scalar.WithTolerance(fTolerance))
	}
	if fMaxIterations > 0 {
		opts = append(opts, scalar.WithMaxIterations(fMaxIterations))
	}
	if trace != nil {
		opts = append(opts, scalar.WithTrace(func(it scalar.Iteration) {
			*trace = append(*trace, it)
		}))
	}
	return opts
}

func systemOptions(trace *[]system.Iteration) []system.Option {
	var opts []system.Option
	if fTolerance > 0 {
		opts = append(opts, system.WithTolerance(fTolerance))
	}
	if fMaxIterations > 0 {
		opts = append(opts, system.WithMaxIterations(fMaxIterations))
	}
	if trace != nil {
		opts = append(opts, system.WithTrace(func(it system.Iteration) {
			*trace = append(*trace, it)
		}))
	}
	return opts
}

func writeTrace(trace interface{}) error {
	if fTracePath == "" {
		return nil
	}
	return encoding.Write(fTracePath, trace)
}

func printScalar(cmd *cobra.Command, method string, res scalar.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\nRoot: %v\nIterations: %d\n", method, res.Root, res.Iterations)
}

func printSystem(cmd *cobra.Command, method string, res system.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\nRoot: x = %v, y = %v\nIterations: %d\n", method, res.X, res.Y, res.Iterations)
}
