// SPDX-License-Identifier: MIT

// Package matrix - small eager kernels used around transport plans.
//
// Purpose:
//   - Transpose/Scale for building derived cost matrices (symmetry and
//     scaling checks on the distance).
//   - RowSums/ColSums/Sum for checking mass conservation of a plan.
//   - AllClose for tolerance-aware comparison of plans in tests and callers.
//
// Every kernel validates its input non-nil, never mutates operands, and uses
// a flat fast-path on *Dense with a fixed-order At/Set fallback otherwise.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags used in error wrapping.
const (
	opTranspose = "Transpose"
	opScale     = "Scale"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
	opSum       = "Sum"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps an error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new cols×rows matrix with out[j,i] = m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense: data[i*cols + j] → res.data[j*rows + i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha must be finite; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite alpha).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		copy(res.data, dm.data)
		floats.Scale(alpha, res.data)
		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	var (
		rows, cols = m.Rows(), m.Cols()
		out        = make([]float64, rows)
		i, j       int
	)
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			out[i] = floats.Sum(dm.data[i*cols : (i+1)*cols])
		}
		return out, nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Accumulation runs row by row, so the summation order is deterministic.
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	var (
		rows, cols = m.Rows(), m.Cols()
		out        = make([]float64, cols)
		i          int
	)
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			floats.Add(out, dm.data[i*cols:(i+1)*cols])
		}
		return out, nil
	}

	var (
		j   int
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// Sum returns Σ_ij m[i,j] (total mass of a plan).
func Sum(m Matrix) (float64, error) {
	rs, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	return floats.Sum(rs), nil
}

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| for all i,j.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrNaNInf if rtol or atol is negative or not finite.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 || atol < 0 || math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}

	var (
		i, j   int
		va, vb float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if va, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(va-vb) > atol+rtol*math.Abs(vb) {
				return false, nil
			}
		}
	}

	return true, nil
}
