package linprog

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// errInconsistentRow marks a dependent equality row whose right-hand side
// disagrees with the rows it depends on.
var errInconsistentRow = errors.New("dependent equality row with inconsistent rhs")

// independentRows returns, in ascending order, the indices of a maximal set
// of linearly independent rows of a. Rows are scanned top to bottom and each
// is reduced against the rows kept so far (incremental row echelon form with
// max-magnitude pivots); a row whose remainder has max-norm <= tol is
// dependent and dropped.
//
// A dropped row must also be consistent: its reduced right-hand side must be
// within tol·max(1, ‖b‖∞), otherwise errInconsistentRow is returned.
//
// Complexity: O(m·k·n) time, O(k·n) space, k = rank(a).
func independentRows(a *mat.Dense, b []float64, tol float64) ([]int, error) {
	m, n := a.Dims()
	var (
		basis  = make([][]float64, 0, m) // reduced rows kept so far
		pivots = make([]int, 0, m)       // pivot column of each basis row
		rhs    = make([]float64, 0, m)   // reduced right-hand sides
		keep   = make([]int, 0, m)
		bScale = math.Max(1, floats.Norm(b, math.Inf(1)))
	)

	var (
		i, k, j, piv int
		f, bi, big   float64
		row          []float64
	)
	for i = 0; i < m; i++ {
		row = make([]float64, n)
		copy(row, a.RawRowView(i))
		bi = b[i]

		// Basis row k has zeros at the pivots of rows 0..k-1, so one ordered
		// pass leaves row zero at every existing pivot.
		for k = range basis {
			f = row[pivots[k]]
			if f == 0 {
				continue
			}
			f /= basis[k][pivots[k]]
			floats.AddScaled(row, -f, basis[k])
			bi -= f * rhs[k]
		}

		piv, big = -1, 0
		for j = 0; j < n; j++ {
			if v := math.Abs(row[j]); v > big {
				piv, big = j, v
			}
		}
		if big <= tol {
			if math.Abs(bi) > tol*bScale {
				return nil, fmt.Errorf("row %d: residual %g: %w", i, bi, errInconsistentRow)
			}
			continue
		}

		basis = append(basis, row)
		pivots = append(pivots, piv)
		rhs = append(rhs, bi)
		keep = append(keep, i)
	}

	return keep, nil
}

// selectRows copies rows idx of a and b into a fresh system.
func selectRows(a *mat.Dense, b []float64, idx []int) (*mat.Dense, []float64) {
	_, n := a.Dims()
	out := mat.NewDense(len(idx), n, nil)
	outB := make([]float64, len(idx))
	for k, i := range idx {
		out.SetRow(k, a.RawRowView(i))
		outB[k] = b[i]
	}

	return out, outB
}
