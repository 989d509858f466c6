// Package system implements solvers for 2x2 nonlinear systems
// F1(x,y) = 0, F2(x,y) = 0: the multivariate Newton method with a
// closed-form Jacobian inversion, and sequential fixed-point iteration.
// Problem instances are plain values bundling the equations with their
// analytic partial derivatives; solvers return their outcome by value.
package system

import "errors"

// Func is a real function of two real variables.
type Func func(x, y float64) float64

// System bundles a pair of equations F1(x,y)=0, F2(x,y)=0 with the
// analytic partial derivatives the Newton solver needs. J11 is dF1/dx,
// J12 is dF1/dy, J21 is dF2/dx and J22 is dF2/dy.
type System struct {
	F1, F2             Func
	J11, J12, J21, J22 Func
}

// Result is the outcome of a solver run.
type Result struct {
	X          float64 `cbor:"x"`
	Y          float64 `cbor:"y"`
	Iterations int     `cbor:"iterations"`
}

// Iteration describes a single solver step, delivered to the WithTrace
// callback.
type Iteration struct {
	N int     `cbor:"n"`
	X float64 `cbor:"x"`
	Y float64 `cbor:"y"`
}

// ErrMaxIterations is wrapped in the error returned when a solver
// exhausts its iteration budget before meeting its tolerance. The
// Result returned alongside holds the last iterate reached.
var ErrMaxIterations = errors.New("maximum iteration count exceeded")
