package emd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/emdist/linprog"
	"github.com/katalvlaran/emdist/minkowski"
	"github.com/katalvlaran/emdist/transport"
)

// Sentinels shared with the builder and the cost computation, so errors.Is
// matches whichever package detected the problem.
var (
	ErrShapeMismatch = transport.ErrShapeMismatch
	ErrMassImbalance = transport.ErrMassImbalance
	ErrInvalidValue  = transport.ErrInvalidValue
	ErrInvalidNorm   = minkowski.ErrInvalidNorm
)

// ErrSolverFailure is matched by every *SolverError.
var ErrSolverFailure = errors.New("emd: solver failure")

// SolverError is returned when the solver reports anything but an optimal
// solution, or returns a solution that cannot be decoded into a flow matrix.
// The network method reports its failures with the same Status values.
type SolverError struct {
	Status  linprog.Status
	Message string // solver diagnostic
	Err     error  // underlying solver error, may be nil
}

func (e *SolverError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("emd: solver failure: %s", e.Status)
	}
	return fmt.Sprintf("emd: solver failure: %s: %s", e.Status, e.Message)
}

// Unwrap exposes both ErrSolverFailure and the solver's own error.
func (e *SolverError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSolverFailure}
	}
	return []error{ErrSolverFailure, e.Err}
}
