package scalar

import (
	"fmt"
	"math"
)

// FixedPoint iterates x = g(x) from x0 until two successive iterates
// differ by at most the configured tolerance. The loop body runs at
// least once, so the returned iteration count is never zero.
//
// Convergence requires g to be a contraction near the fixed point; for
// any other g the iteration budget is what stops the loop, reported as
// an ErrMaxIterations error. The unbounded classical formulation would
// loop forever on such inputs.
func FixedPoint(g Func, x0 float64, opts ...Option) (Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Result{}, err
	}

	var res Result
	x := x0
	for {
		next := g(x)
		res.Iterations++
		res.Root = next
		if cfg.Trace != nil {
			cfg.Trace(Iteration{N: res.Iterations, X: next, FX: next - x})
		}
		if math.Abs(next-x) <= cfg.Tolerance {
			break
		}
		if res.Iterations == cfg.MaxIterations {
			return res, fmt.Errorf("fixed-point iteration stopped after %d iterations: %w", res.Iterations, ErrMaxIterations)
		}
		x = next
	}

	cfg.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("root", res.Root).
		Msg("fixed-point iteration converged")
	return res, nil
}
