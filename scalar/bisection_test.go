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

func TestBisectSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	res, err := Bisect(f, 0, 2)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt2, res.Root, DefaultTolerance)
	assert.Less(t, math.Abs(f(res.Root)), 1e-2)
	// the interval halves every step: ceil(log2(2/1e-3)) = 11
	assert.Equal(t, 11, res.Iterations)
}

func TestBisectDegenerateInterval(t *testing.T) {
	// an interval already narrower than the tolerance returns its
	// midpoint without iterating
	res, err := Bisect(func(x float64) float64 { return x }, 1, 1.0005)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Iterations)
	assert.InDelta(t, 1.00025, res.Root, 1e-9)
}

func TestBisectMaxIterations(t *testing.T) {
	res, err := Bisect(func(x float64) float64 { return x }, -1000, 1000, WithMaxIterations(3))
	require.ErrorIs(t, err, ErrMaxIterations)
	assert.Equal(t, 3, res.Iterations)
}

func TestBisectTrace(t *testing.T) {
	var trace []Iteration
	res, err := Bisect(func(x float64) float64 { return x - 1 }, 0, 16, WithTrace(func(it Iteration) {
		trace = append(trace, it)
	}))
	require.NoError(t, err)

	require.Len(t, trace, res.Iterations)
	for i, it := range trace {
		assert.Equal(t, i+1, it.N)
	}
	assert.Equal(t, res.Root, trace[len(trace)-1].X)
}

func TestBisectBracketedRootProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("final midpoint lands within tolerance of the bracketed root", prop.ForAll(
		func(root, spanLeft, spanRight float64) bool {
			f := func(x float64) float64 { return x - root }
			res, err := Bisect(f, root-spanLeft, root+spanRight)
			return err == nil && math.Abs(res.Root-root) <= DefaultTolerance
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(0.5, 50),
		gen.Float64Range(0.5, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
