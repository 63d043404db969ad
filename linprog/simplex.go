package linprog

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex solves Programs with gonum's dense simplex implementation.
//
// The free variables of the canonical form are split by lp.Convert into
// v = v⁺ − v⁻ with slack variables for the inequalities; equality rows made
// redundant by that system are removed before lp.Simplex runs, because
// lp.Simplex requires a full-rank constraint matrix.
type Simplex struct {
	tol           float64
	redundancyTol float64
}

var _ Solver = (*Simplex)(nil)

// NewSimplex returns a Simplex solver with DefaultTolerance and
// DefaultRedundancyTolerance unless overridden by opts.
func NewSimplex(opts ...Option) *Simplex {
	s := &Simplex{tol: DefaultTolerance, redundancyTol: DefaultRedundancyTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve implements Solver.
//
// Stages:
//  1. Validate the program (ErrBadProgram).
//  2. lp.Convert to standard form: min c'x, A x = b, x >= 0.
//  3. Drop dependent equality rows; an inconsistent one is StatusInfeasible.
//  4. lp.Simplex; backend sentinels are mapped onto Status.
//  5. Fold v = x[:n] − x[n:2n] back onto the original variables.
func (s *Simplex) Solve(p *Program) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{Status: StatusNumerical, Message: err.Error()}, err
	}

	n := p.NumVars()
	c, a, b := lp.Convert(p.C, p.AUb, p.BUb, p.AEq, p.BEq)

	keep, err := independentRows(a, b, s.redundancyTol)
	if err != nil {
		return failure(StatusInfeasible, err)
	}
	if rows, _ := a.Dims(); len(keep) < rows {
		a, b = selectRows(a, b, keep)
	}

	opt, x, err := lp.Simplex(c, a, b, s.tol, nil)
	if err != nil {
		return failure(statusOf(err), err)
	}
	if math.IsNaN(opt) || math.IsInf(opt, 0) || len(x) < 2*n {
		return failure(StatusNumerical, fmt.Errorf("objective %g with %d values", opt, len(x)))
	}

	v := make([]float64, n)
	floats.SubTo(v, x[:n], x[n:2*n])

	return Solution{Status: StatusOptimal, Objective: opt, X: v}, nil
}

// failure builds the (Solution, error) pair for a non-optimal outcome.
func failure(st Status, cause error) (Solution, error) {
	return Solution{Status: st, Message: cause.Error()},
		fmt.Errorf("%w: %s: %w", ErrSolveFailed, st, cause)
}

// statusOf maps gonum lp sentinels onto Status.
func statusOf(err error) Status {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return StatusUnbounded
	case errors.Is(err, lp.ErrSingular):
		return StatusSingular
	default:
		return StatusNumerical
	}
}
