package emd

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/emdist/flow"
	"github.com/katalvlaran/emdist/linprog"
	"github.com/katalvlaran/emdist/matrix"
	"github.com/katalvlaran/emdist/minkowski"
	"github.com/katalvlaran/emdist/transport"
)

// Result is the outcome of one EMD computation.
type Result struct {
	// Distance is the minimal total cost Σ cost[i][j]·Flow[i][j].
	Distance float64

	// Flow is the len(x)×len(y) optimal transport plan.
	Flow *matrix.Dense
}

// Distance returns the EMD between weights x and y under cost, where
// cost.At(i, j) is the cost of moving one unit of mass from x[i] to y[j].
//
// Stages:
//  1. transport.Build; shape/value/mass errors propagate unchanged.
//  2. Solve with the configured linprog.Solver (or, with MethodNetwork,
//     with flow.Transport on the same inputs).
//  3. Non-optimal outcome → *SolverError (matches ErrSolverFailure).
//  4. Reshape the flat solution row-major into the flow matrix.
//
// Complexity: dominated by the solver; the default simplex works on a dense
// O((r+c+r·c) × 3·r·c) standard-form tableau.
func Distance(x, y []float64, cost matrix.Matrix, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	if o.method == MethodNetwork {
		return distanceByNetwork(x, y, cost)
	}

	prog, err := transport.Build(x, y, cost)
	if err != nil {
		return Result{}, err
	}

	sol, err := o.solver.Solve(prog)
	if err != nil {
		return Result{}, &SolverError{Status: failedStatus(sol.Status), Message: sol.Message, Err: err}
	}
	if sol.Status != linprog.StatusOptimal {
		return Result{}, &SolverError{Status: sol.Status, Message: sol.Message}
	}

	flow, err := decodeFlow(sol.X, len(x), len(y))
	if err != nil {
		return Result{}, &SolverError{Status: linprog.StatusNumerical, Message: err.Error(), Err: err}
	}
	if math.IsNaN(sol.Objective) || math.IsInf(sol.Objective, 0) {
		return Result{}, &SolverError{
			Status:  linprog.StatusNumerical,
			Message: fmt.Sprintf("non-finite objective %g", sol.Objective),
		}
	}

	return Result{Distance: cleanDistance(sol.Objective), Flow: flow}, nil
}

// distanceByNetwork is the MethodNetwork path of Distance. Input errors
// are the transport sentinels; anything else from flow is a solver failure.
func distanceByNetwork(x, y []float64, cost matrix.Matrix) (Result, error) {
	if err := transport.Validate(x, y, cost); err != nil {
		return Result{}, err
	}

	plan, err := flow.Transport(x, y, cost, flow.DefaultOptions())
	switch {
	case err == nil:
	case errors.Is(err, flow.ErrInfeasible):
		return Result{}, &SolverError{Status: linprog.StatusInfeasible, Message: err.Error(), Err: err}
	default:
		return Result{}, &SolverError{Status: linprog.StatusNumerical, Message: err.Error(), Err: err}
	}

	return Result{Distance: cleanDistance(plan.Cost), Flow: plan.Flow}, nil
}

// FromPoints returns the EMD between x supported on points px and y supported
// on points py, with ground cost the Minkowski p-distance between points.
//
// Contracts:
//   - len(px) == len(x), len(py) == len(y) → else ErrShapeMismatch.
//   - all points share one dimensionality >= 1 → else ErrShapeMismatch.
//   - coordinates finite → else ErrInvalidValue; p >= 1 → else ErrInvalidNorm.
//
// The cost matrix is the plain O(r·c·dim) pairwise computation; the LP that
// follows is far more expensive, so no shortcut is taken.
func FromPoints(x []float64, px [][]float64, y []float64, py [][]float64, p float64, opts ...Option) (Result, error) {
	if len(px) != len(x) {
		return Result{}, fmt.Errorf("%w: %d points for %d weights in x", ErrShapeMismatch, len(px), len(x))
	}
	if len(py) != len(y) {
		return Result{}, fmt.Errorf("%w: %d points for %d weights in y", ErrShapeMismatch, len(py), len(y))
	}

	cost, err := minkowski.CostMatrix(px, py, p)
	switch {
	case err == nil:
	case errors.Is(err, minkowski.ErrDimensionMismatch), errors.Is(err, minkowski.ErrEmptyPointSet):
		return Result{}, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	case errors.Is(err, minkowski.ErrInvalidPoint):
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	default:
		return Result{}, err
	}

	return Distance(x, y, cost, opts...)
}

// FromPointsEuclidean is FromPoints with p = DefaultP.
func FromPointsEuclidean(x []float64, px [][]float64, y []float64, py [][]float64, opts ...Option) (Result, error) {
	return FromPoints(x, px, y, py, DefaultP, opts...)
}

// decodeFlow reshapes the flat solution into rows×cols, clearing round-off
// below zero. The solution is not modified.
func decodeFlow(v []float64, rows, cols int) (*matrix.Dense, error) {
	if len(v) != rows*cols {
		return nil, fmt.Errorf("solution has %d values, want %d", len(v), rows*cols)
	}

	clean := make([]float64, len(v))
	for k, f := range v {
		switch {
		case f < -FlowCleanTolerance:
			return nil, fmt.Errorf("negative flow %g at (%d,%d)", f, k/cols, k%cols)
		case f < 0:
			clean[k] = 0
		default:
			clean[k] = f
		}
	}

	return matrix.NewFromData(rows, cols, clean)
}

// cleanDistance maps the round-off band (−FlowCleanTolerance, 0) to 0; costs
// and flows are non-negative, so a true optimum is never below zero.
func cleanDistance(d float64) float64 {
	if d < 0 && d > -FlowCleanTolerance {
		return 0
	}
	return d
}

// failedStatus guards against solvers that return an error together with
// StatusOptimal.
func failedStatus(st linprog.Status) linprog.Status {
	if st == linprog.StatusOptimal {
		return linprog.StatusNumerical
	}
	return st
}
