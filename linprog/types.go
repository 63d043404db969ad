package linprog

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrBadProgram is returned when a Program's vectors and matrices disagree in shape.
var ErrBadProgram = errors.New("linprog: malformed program")

// ErrSolveFailed is wrapped by every error a Solver returns for a well-formed
// program it could not solve to optimality.
var ErrSolveFailed = errors.New("linprog: solve failed")

// Status is the outcome of a solve.
type Status int

const (
	// StatusOptimal means X and Objective hold an optimal solution.
	StatusOptimal Status = iota
	// StatusInfeasible means no v satisfies the constraints.
	StatusInfeasible
	// StatusUnbounded means the objective decreases without bound.
	StatusUnbounded
	// StatusSingular means the (presolved) constraint matrix is rank deficient.
	StatusSingular
	// StatusNumerical covers every other backend failure (ill-conditioning,
	// degenerate pivots, linear-solve failure).
	StatusNumerical
)

var statusNames = [...]string{
	StatusOptimal:    "optimal",
	StatusInfeasible: "infeasible",
	StatusUnbounded:  "unbounded",
	StatusSingular:   "singular",
	StatusNumerical:  "numerical failure",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Program is a linear program in canonical form. See the package doc.
type Program struct {
	C   []float64  // objective, one entry per variable
	AEq mat.Matrix // equality constraints, len(BEq) × len(C); may be nil
	BEq []float64
	AUb mat.Matrix // inequality constraints, len(BUb) × len(C); may be nil
	BUb []float64
}

// NumVars returns the number of decision variables.
func (p *Program) NumVars() int { return len(p.C) }

// Validate checks that every matrix is conformable with C and its right-hand side.
func (p *Program) Validate() error {
	if p == nil || len(p.C) == 0 {
		return fmt.Errorf("%w: empty objective", ErrBadProgram)
	}
	if err := checkBlock("equality", p.AEq, p.BEq, len(p.C)); err != nil {
		return err
	}
	if err := checkBlock("inequality", p.AUb, p.BUb, len(p.C)); err != nil {
		return err
	}
	if p.AEq == nil && p.AUb == nil {
		return fmt.Errorf("%w: no constraints", ErrBadProgram)
	}

	return nil
}

func checkBlock(name string, a mat.Matrix, b []float64, n int) error {
	if a == nil {
		if len(b) != 0 {
			return fmt.Errorf("%w: %s rhs without matrix", ErrBadProgram, name)
		}
		return nil
	}
	r, c := a.Dims()
	if c != n {
		return fmt.Errorf("%w: %s matrix has %d columns, want %d", ErrBadProgram, name, c, n)
	}
	if r != len(b) {
		return fmt.Errorf("%w: %s matrix has %d rows, rhs has %d", ErrBadProgram, name, r, len(b))
	}

	return nil
}

// Solution is what a Solver reports.
type Solution struct {
	Status    Status
	Objective float64   // C·X; meaningful only when Status == StatusOptimal
	X         []float64 // len == NumVars; nil unless Status == StatusOptimal
	Message   string    // backend diagnostic, empty on success
}

// Solver solves canonical-form programs.
//
// Implementations return (Solution{Status: StatusOptimal, ...}, nil) on
// success. On failure they return a Solution with a non-optimal Status and an
// error wrapping ErrSolveFailed; malformed programs yield ErrBadProgram.
type Solver interface {
	Solve(p *Program) (Solution, error)
}
