package linprog

import "math"

const (
	// DefaultTolerance is handed to lp.Simplex as its optimality tolerance.
	DefaultTolerance = 1e-10

	// DefaultRedundancyTolerance decides when an eliminated equality row is
	// numerically zero. Producers that check mass balance must use a
	// tolerance no looser than this one, or presolve may reject their program.
	DefaultRedundancyTolerance = 1e-8
)

const (
	panicToleranceInvalid  = "linprog: WithTolerance: tol must be finite and > 0"
	panicRedundancyInvalid = "linprog: WithRedundancyTolerance: tol must be finite and > 0"
)

// Option configures a Simplex solver.
type Option func(*Simplex)

// WithTolerance sets the simplex optimality tolerance. Panics on tol <= 0 or non-finite.
func WithTolerance(tol float64) Option {
	if !validTol(tol) {
		panic(panicToleranceInvalid)
	}
	return func(s *Simplex) { s.tol = tol }
}

// WithRedundancyTolerance sets the presolve row-elimination tolerance.
// Panics on tol <= 0 or non-finite.
func WithRedundancyTolerance(tol float64) Option {
	if !validTol(tol) {
		panic(panicRedundancyInvalid)
	}
	return func(s *Simplex) { s.redundancyTol = tol }
}

func validTol(tol float64) bool {
	return tol > 0 && !math.IsInf(tol, 0) && !math.IsNaN(tol)
}
