package system

import (
	"fmt"
	"math"
)

// FixedPoint iterates the rearranged system x = g1(x, y), y = g2(x, y)
// from (x0, y0). The update is sequential, not simultaneous: g2 is
// evaluated at the freshly computed x, so each sweep uses the newest
// available coordinate. The iteration stops once neither coordinate
// moved by more than the configured tolerance; the loop body executes
// at least once.
//
// Convergence requires the rearrangement to be contractive near the
// solution; otherwise the iteration budget reports ErrMaxIterations.
func FixedPoint(g1, g2 Func, x0, y0 float64, opts ...Option) (Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Result{}, err
	}

	var res Result
	x, y := x0, y0
	for {
		xNext := g1(x, y)
		yNext := g2(xNext, y)

		res.Iterations++
		res.X, res.Y = xNext, yNext
		if cfg.Trace != nil {
			cfg.Trace(Iteration{N: res.Iterations, X: xNext, Y: yNext})
		}
		if math.Max(math.Abs(xNext-x), math.Abs(yNext-y)) <= cfg.Tolerance {
			break
		}
		if res.Iterations == cfg.MaxIterations {
			return res, fmt.Errorf("fixed-point system stopped after %d iterations: %w", res.Iterations, ErrMaxIterations)
		}
		x, y = xNext, yNext
	}

	cfg.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("x", res.X).
		Float64("y", res.Y).
		Msg("fixed-point system converged")
	return res, nil
}
