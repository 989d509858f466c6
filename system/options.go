package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/numkit/rootfind/logger"
)

const (
	// DefaultTolerance is the convergence threshold used when
	// WithTolerance is not supplied. System solvers default to a
	// tighter threshold than the scalar ones.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations bounds every solver loop.
	DefaultMaxIterations = 1000
)

// Option defines option for altering the behavior of a system solver.
// See the descriptions of functions returning instances of this type
// for implemented options.
type Option func(*Config) error

// Config is the configuration for a solver with the options applied.
type Config struct {
	Tolerance     float64         // defaults to DefaultTolerance
	MaxIterations int             // defaults to DefaultMaxIterations
	Logger        zerolog.Logger  // defaults to rootfind logger
	Trace         func(Iteration) // nil disables tracing
}

// WithTolerance sets the convergence threshold of the solver.
func WithTolerance(eps float64) Option {
	return func(cfg *Config) error {
		if eps <= 0 {
			return fmt.Errorf("invalid tolerance: %g", eps)
		}
		cfg.Tolerance = eps
		return nil
	}
}

// WithMaxIterations sets the iteration budget of the solver.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("invalid iteration budget: %d", n)
		}
		cfg.MaxIterations = n
		return nil
	}
}

// WithLogger specifies a zerolog.Logger for the solver's completion
// logs. By default, uses the rootfind logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = l
		return nil
	}
}

// WithTrace registers a callback invoked once per iteration with the
// new iterate. The callback runs synchronously inside the solve loop.
func WithTrace(fn func(Iteration)) Option {
	return func(cfg *Config) error {
		cfg.Trace = fn
		return nil
	}
}

// NewConfig returns a default Config with the given options applied.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Logger:        logger.Logger(),
	}
	for _, option := range opts {
		if err := option(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
