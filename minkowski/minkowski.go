// Package minkowski computes Minkowski (p-norm) distances between coordinate
// vectors and the dense pairwise cost matrix between two point sets.
//
//	d_p(a, b) = (Σ |a_k − b_k|^p)^(1/p)
//
// p = 1 is Manhattan, p = 2 Euclidean, p = +Inf Chebyshev. p < 1 does not
// define a metric and is rejected.
package minkowski

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/emdist/matrix"
)

// Euclidean is the default norm order.
const Euclidean = 2.0

var (
	// ErrInvalidNorm: p is NaN or < 1.
	ErrInvalidNorm = errors.New("minkowski: p must be >= 1")

	// ErrDimensionMismatch: two coordinate vectors differ in length, or a
	// point has no coordinates.
	ErrDimensionMismatch = errors.New("minkowski: dimension mismatch")

	// ErrEmptyPointSet: a point set has no points.
	ErrEmptyPointSet = errors.New("minkowski: empty point set")

	// ErrInvalidPoint: a coordinate is NaN or ±Inf.
	ErrInvalidPoint = errors.New("minkowski: non-finite coordinate")
)

// ValidateNorm returns ErrInvalidNorm unless p >= 1 (+Inf allowed).
func ValidateNorm(p float64) error {
	if math.IsNaN(p) || p < 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidNorm, p)
	}
	return nil
}

// Distance returns the p-norm of a − b.
func Distance(a, b []float64, p float64) (float64, error) {
	if err := ValidateNorm(p); err != nil {
		return 0, err
	}
	if len(a) != len(b) || len(a) == 0 {
		return 0, fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrDimensionMismatch, len(a), len(b))
	}

	return floats.Distance(a, b, p), nil
}

// CostMatrix returns the len(px)×len(py) matrix cost[i][j] = d_p(px[i], py[j]).
//
// All points of both sets must share one dimensionality >= 1 and have finite
// coordinates. The computation is the plain O(rows·cols·dim) double loop.
func CostMatrix(px, py [][]float64, p float64) (*matrix.Dense, error) {
	if err := ValidateNorm(p); err != nil {
		return nil, err
	}
	if len(px) == 0 || len(py) == 0 {
		return nil, fmt.Errorf("%w: len(px)=%d, len(py)=%d", ErrEmptyPointSet, len(px), len(py))
	}
	dim := len(px[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: points have no coordinates", ErrDimensionMismatch)
	}
	if err := checkPoints("px", px, dim); err != nil {
		return nil, err
	}
	if err := checkPoints("py", py, dim); err != nil {
		return nil, err
	}

	cost, err := matrix.NewDense(len(px), len(py))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < len(px); i++ {
		for j = 0; j < len(py); j++ {
			// Finite inputs keep the distance finite unless it overflows.
			if err = cost.Set(i, j, floats.Distance(px[i], py[j], p)); err != nil {
				return nil, fmt.Errorf("cost(%d,%d): %w", i, j, err)
			}
		}
	}

	return cost, nil
}

// checkPoints verifies dimensionality and finiteness of one point set.
func checkPoints(name string, pts [][]float64, dim int) error {
	for i, pt := range pts {
		if len(pt) != dim {
			return fmt.Errorf("%w: %s[%d] has %d coordinates, want %d", ErrDimensionMismatch, name, i, len(pt), dim)
		}
		for k, v := range pt {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s[%d][%d] = %g", ErrInvalidPoint, name, i, k, v)
			}
		}
	}

	return nil
}
