// Package scalar implements root finders for a single real equation:
// interval bisection, fixed-point (simple) iteration and Newton's
// method. Every solver takes the problem as plain functions, runs to a
// configurable tolerance and returns its outcome by value, so repeated
// and concurrent calls are safe.
package scalar

import "errors"

// Func is a real function of one real variable.
type Func func(float64) float64

// Result is the outcome of a solver run.
type Result struct {
	Root       float64 `cbor:"root"`
	Iterations int     `cbor:"iterations"`
}

// Iteration describes a single solver step. It is delivered to the
// WithTrace callback; FX holds the residual the method drives to zero
// (f(x) for Bisect and Newton, g(x)-x for FixedPoint).
type Iteration struct {
	N  int     `cbor:"n"`
	X  float64 `cbor:"x"`
	FX float64 `cbor:"fx"`
}

// ErrMaxIterations is wrapped in the error returned when a solver
// exhausts its iteration budget before meeting its tolerance. The
// Result returned alongside holds the last iterate reached.
var ErrMaxIterations = errors.New("maximum iteration count exceeded")
