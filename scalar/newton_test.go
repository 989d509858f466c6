package scalar

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewtonSqrt(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	res, err := Newton(f, df, 2)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt2, res.Root, 1e-3)
	assert.Less(t, math.Abs(f(res.Root)), DefaultTolerance)
}

func TestNewtonRunsAtLeastOnce(t *testing.T) {
	// starting exactly on the root still performs one (no-op) update
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	res, err := Newton(f, df, math.Sqrt2)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
}

func TestNewtonZeroDerivative(t *testing.T) {
	// f has no real root and df vanishes at the start point; the
	// division is deliberately unguarded, so the iterate turns Inf/NaN
	// and the budget reports non-convergence
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }

	res, err := Newton(f, df, 0, WithMaxIterations(10))
	require.ErrorIs(t, err, ErrMaxIterations)
	assert.True(t, math.IsNaN(res.Root) || math.IsInf(res.Root, 0))
}

func TestNewtonTightTermination(t *testing.T) {
	var trace []Iteration
	f := func(x float64) float64 { return x*x*x - x - 2 }
	df := func(x float64) float64 { return 3*x*x - 1 }

	res, err := Newton(f, df, 2, WithTrace(func(it Iteration) {
		trace = append(trace, it)
	}))
	require.NoError(t, err)
	require.Len(t, trace, res.Iterations)

	assert.Less(t, math.Abs(trace[len(trace)-1].FX), DefaultTolerance)
	require.Greater(t, len(trace), 1)
	assert.GreaterOrEqual(t, math.Abs(trace[len(trace)-2].FX), DefaultTolerance)
}

func TestNewtonLinearProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("a single step solves any linear equation", prop.ForAll(
		func(a, b, start float64) bool {
			f := func(x float64) float64 { return a*x + b }
			df := func(x float64) float64 { return a }
			res, err := Newton(f, df, start)
			return err == nil && res.Iterations == 1 && math.Abs(f(res.Root)) < DefaultTolerance
		},
		gen.Float64Range(0.5, 100),
		gen.Float64Range(-100, 100),
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
