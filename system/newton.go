package system

import (
	"fmt"
	"math"
)

// Newton runs the multivariate Newton iteration on sys from (x0, y0).
// The 2x2 Jacobian is inverted in closed form at every step:
//
//	det = J11*J22 - J12*J21
//	x'  = x - ( J22*F1 - J12*F2) / det
//	y'  = y - (-J21*F1 + J11*F2) / det
//
// The iteration stops once neither coordinate moved by more than the
// configured tolerance; the update runs before the first check, so the
// loop body executes at least once.
//
// A singular Jacobian is not guarded: a zero determinant poisons the
// iterates with Inf/NaN and the iteration budget eventually reports
// ErrMaxIterations.
func Newton(sys System, x0, y0 float64, opts ...Option) (Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Result{}, err
	}

	var res Result
	x, y := x0, y0
	for {
		f1 := sys.F1(x, y)
		f2 := sys.F2(x, y)
		j11 := sys.J11(x, y)
		j12 := sys.J12(x, y)
		j21 := sys.J21(x, y)
		j22 := sys.J22(x, y)

		det := j11*j22 - j12*j21
		xNext := x - (j22*f1-j12*f2)/det
		yNext := y - (-j21*f1+j11*f2)/det

		res.Iterations++
		res.X, res.Y = xNext, yNext
		if cfg.Trace != nil {
			cfg.Trace(Iteration{N: res.Iterations, X: xNext, Y: yNext})
		}
		if math.Max(math.Abs(xNext-x), math.Abs(yNext-y)) <= cfg.Tolerance {
			break
		}
		if res.Iterations == cfg.MaxIterations {
			return res, fmt.Errorf("newton system stopped after %d iterations: %w", res.Iterations, ErrMaxIterations)
		}
		x, y = xNext, yNext
	}

	cfg.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("x", res.X).
		Float64("y", res.Y).
		Msg("newton system converged")
	return res, nil
}
