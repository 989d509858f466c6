package scalar

import (
	"fmt"
	"math"
)

// Newton iterates x = x - f(x)/df(x) from x0 until |f(x)| falls below
// the configured tolerance. The update runs before the first
// termination check, so the loop body executes at least once.
//
// A zero derivative is not guarded: the division yields an infinite or
// NaN iterate that propagates through subsequent steps until the
// iteration budget reports ErrMaxIterations, with the poisoned iterate
// visible in the Result.
func Newton(f, df Func, x0 float64, opts ...Option) (Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Result{}, err
	}

	var res Result
	x := x0
	for {
		x -= f(x) / df(x)
		res.Iterations++
		res.Root = x
		fx := f(x)
		if cfg.Trace != nil {
			cfg.Trace(Iteration{N: res.Iterations, X: x, FX: fx})
		}
		if math.Abs(fx) < cfg.Tolerance {
			break
		}
		if res.Iterations == cfg.MaxIterations {
			return res, fmt.Errorf("newton stopped after %d iterations: %w", res.Iterations, ErrMaxIterations)
		}
	}

	cfg.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("root", res.Root).
		Msg("newton converged")
	return res, nil
}
