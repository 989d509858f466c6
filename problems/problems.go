// Package problems carries the demo problem instances solved by the
// rootfind command. Equations, derivatives, Jacobians and fixed-point
// rearrangements are ordinary values, hardcoded here so the command
// line tasks and the tests share a single definition.
package problems

import (
	"math"

	"github.com/numkit/rootfind/system"
)

// Bisection task: 2*log10(d) - d/2 + 1 = 0 on [0.1, 6.2].
const (
	BisectLeft  = 0.1
	BisectRight = 6.2
)

// BisectF is the bisection task equation.
func BisectF(d float64) float64 { return 2*math.Log10(d) - d/2 + 1 }

// The scalar iteration tasks solve 3x - cos(x) - 2 = 0 from 8.75,
// either rearranged as the fixed point x = (cos(x)+2)/3 or directly
// with Newton.
const ScalarStart = 8.75

// IterG is the fixed-point rearrangement of the scalar task equation.
func IterG(d float64) float64 { return (math.Cos(d) + 2) / 3 }

// NewtonF is the scalar task equation and NewtonDF its derivative.
func NewtonF(d float64) float64  { return 3*d - math.Cos(d) - 2 }
func NewtonDF(d float64) float64 { return 3 + math.Sin(d) }

// System task: sin(x+1) - y = 1.2, 2x + cos(y) = 2, solved from
// (0.8, 0.8). The solution is near (0.51015, -0.20184).
const (
	SystemStartX = 0.8
	SystemStartY = 0.8
)

// Trig returns the system task equations with their analytic Jacobian.
func Trig() system.System {
	return system.System{
		F1:  func(x, y float64) float64 { return math.Sin(x+1) - y - 1.2 },
		F2:  func(x, y float64) float64 { return 2*x + math.Cos(y) - 2 },
		J11: func(x, y float64) float64 { return math.Cos(x + 1) },
		J12: func(x, y float64) float64 { return -1 },
		J21: func(x, y float64) float64 { return 2 },
		J22: func(x, y float64) float64 { return -math.Sin(y) },
	}
}

// TrigG1 and TrigG2 are the fixed-point rearrangements of the same
// system: x = 1 - cos(y)/2 and y = sin(x+1) - 1.2. TrigG2 expects the
// freshly updated x, matching the sequential update order of
// system.FixedPoint.
func TrigG1(x, y float64) float64 { return 1 - math.Cos(y)/2 }
func TrigG2(x, y float64) float64 { return math.Sin(x+1) - 1.2 }
