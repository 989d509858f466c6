package scalar

import "fmt"

// Bisect halves the interval [left, right] until its width drops below
// the configured tolerance and returns the final midpoint. At each step
// the half on which f changes sign is kept: when f(left)*f(m) <= 0 the
// root lies left of the midpoint m, so the right bound moves to m.
//
// A sign change of f on the initial interval is an unchecked
// precondition. Without one the loop still terminates, but the point it
// narrows down to is arbitrary.
func Bisect(f Func, left, right float64, opts ...Option) (Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Result{}, err
	}

	res := Result{Root: (left + right) / 2}
	for right-left >= cfg.Tolerance {
		if res.Iterations == cfg.MaxIterations {
			return res, fmt.Errorf("bisection stopped after %d iterations: %w", res.Iterations, ErrMaxIterations)
		}
		m := (left + right) / 2
		if f(left)*f(m) <= 0 {
			right = m
		} else {
			left = m
		}
		res.Iterations++
		res.Root = m
		if cfg.Trace != nil {
			cfg.Trace(Iteration{N: res.Iterations, X: m, FX: f(m)})
		}
	}

	cfg.Logger.Debug().
		Int("iterations", res.Iterations).
		Float64("root", res.Root).
		Float64("width", right-left).
		Msg("bisection converged")
	return res, nil
}
