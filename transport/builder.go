package transport

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/emdist/linprog"
	"github.com/katalvlaran/emdist/matrix"
)

// Build returns the transportation LP moving x onto y under cost.
//
// Contracts (checked in this order):
//   - cost non-nil, len(x) > 0, len(y) > 0, cost is len(x)×len(y) → else ErrShapeMismatch.
//   - every weight and cost finite and >= 0 → else ErrInvalidValue.
//   - |Σx − Σy| < MassTolerance → else ErrMassImbalance.
//
// The returned program owns copies of its inputs:
//   - C   = cost flattened row-major (v[i*cols+j] ↔ cost[i][j]).
//   - AEq = marginal rows for x followed by y, BEq = x ++ y.
//   - AUb = −I, BUb = 0.
//
// Complexity: O(rows·cols) time and memory for C; constraint matrices are O(1).
func Build(x, y []float64, cost matrix.Matrix) (*linprog.Program, error) {
	if err := Validate(x, y, cost); err != nil {
		return nil, err
	}

	var (
		rows, cols = len(x), len(y)
		n          = rows * cols
	)
	c, err := Flatten(cost)
	if err != nil {
		return nil, err
	}

	beq := make([]float64, 0, rows+cols)
	beq = append(beq, x...)
	beq = append(beq, y...)

	return &linprog.Program{
		C:   c,
		AEq: marginals{rows: rows, cols: cols},
		BEq: beq,
		AUb: negIdentity{n: n},
		BUb: make([]float64, n),
	}, nil
}

// Validate checks the Build contracts without building the program. It is
// shared with solvers that work on the transportation network directly.
func Validate(x, y []float64, cost matrix.Matrix) error {
	if err := checkShape(x, y, cost); err != nil {
		return err
	}
	if err := checkWeights("x", x); err != nil {
		return err
	}
	if err := checkWeights("y", y); err != nil {
		return err
	}
	if err := matrix.ValidateNonNegative(cost); err != nil {
		return fmt.Errorf("%w: cost: %w", ErrInvalidValue, err)
	}

	return checkMass(x, y)
}

// checkShape validates presence and conformability of the inputs.
func checkShape(x, y []float64, cost matrix.Matrix) error {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return fmt.Errorf("%w: cost: %w", ErrShapeMismatch, err)
	}
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("%w: empty weight vector (len(x)=%d, len(y)=%d)", ErrShapeMismatch, len(x), len(y))
	}
	if err := matrix.ValidateShape(cost, len(x), len(y)); err != nil {
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}

	return nil
}

// checkWeights rejects NaN, ±Inf and negative weights.
func checkWeights(name string, w []float64) error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s[%d] = %g", ErrInvalidValue, name, i, v)
		}
	}

	return nil
}

// checkMass enforces |Σx − Σy| < MassTolerance in float64.
func checkMass(x, y []float64) error {
	sx, sy := floats.Sum(x), floats.Sum(y)
	if d := math.Abs(sx - sy); !(d < MassTolerance) {
		return fmt.Errorf("%w: sum(x)=%g, sum(y)=%g, |diff|=%g >= %g",
			ErrMassImbalance, sx, sy, d, MassTolerance)
	}

	return nil
}

// Flatten returns cost in row-major order as a fresh slice.
func Flatten(cost matrix.Matrix) ([]float64, error) {
	if d, ok := cost.(*matrix.Dense); ok {
		return d.Data(), nil
	}

	var (
		rows, cols = cost.Rows(), cost.Cols()
		out        = make([]float64, rows*cols)
		i, j       int
		err        error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out[i*cols+j], err = cost.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: cost: %w", ErrShapeMismatch, err)
			}
		}
	}

	return out, nil
}
