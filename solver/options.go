// options.go — functional options for solver.Config.
//
// Contract:
//   - Options are functional (type Option func(*Config)).
//   - Option constructors validate and panic on meaningless inputs.
//   - The algorithm itself (Solve) never panics.

package solver

// Config controls BiCGSTAB's stopping criteria.
type Config struct {
	MaxIters int     // iteration budget per Solve call
	Tol      float64 // residual-norm tolerance ||s||_2 < Tol
}

// DefaultMaxIters and DefaultTol are the out-of-the-box stopping
// criteria: a generous iteration budget and a tight residual target
// suitable for the modest system sizes a circuit's node count produces.
const (
	DefaultMaxIters = 100
	DefaultTol      = 1e-6

	// breakdownEps guards the inner-product denominators against
	// near-zero breakdown, per the algorithm's step 2b/2f/2j.
	breakdownEps = 1e-30
)

// Option customizes a Config.
type Option func(*Config)

// WithMaxIters overrides the iteration budget. Panics if n <= 0: a
// non-positive budget can never make progress, which is a caller
// programming error, not a runtime condition to tolerate.
func WithMaxIters(n int) Option {
	if n <= 0 {
		panic("solver: WithMaxIters(n<=0)")
	}

	return func(c *Config) { c.MaxIters = n }
}

// WithTol overrides the residual tolerance. Panics if tol <= 0.
func WithTol(tol float64) Option {
	if tol <= 0 {
		panic("solver: WithTol(tol<=0)")
	}

	return func(c *Config) { c.Tol = tol }
}

// NewConfig builds a Config with the default stopping criteria, then
// applies opts.
func NewConfig(opts ...Option) Config {
	c := Config{MaxIters: DefaultMaxIters, Tol: DefaultTol}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
