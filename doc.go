// Package rootfind provides classical root-finding numerical methods:
// bisection, fixed-point (simple) iteration and Newton's method for a
// single equation, and Newton / fixed-point iteration for 2x2 nonlinear
// systems.
//
// The solvers live in the scalar and system packages. The problems
// package carries the demo problem instances run by the rootfind
// command (cmd/rootfind), and the encoding package serializes solver
// results and iteration traces.
package rootfind

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
