package transport

import "gonum.org/v1/gonum/mat"

// marginals is the (rows+cols) × (rows·cols) equality matrix. Row i < rows
// selects the flows leaving x[i]; row rows+j selects the flows reaching y[j].
// Entries are computed from indices on demand.
type marginals struct {
	rows, cols int
}

var _ mat.Matrix = marginals{}

func (m marginals) Dims() (r, c int) { return m.rows + m.cols, m.rows * m.cols }

func (m marginals) At(r, k int) float64 {
	if r < 0 || r >= m.rows+m.cols || k < 0 || k >= m.rows*m.cols {
		panic(mat.ErrIndexOutOfRange)
	}
	if r < m.rows {
		if k/m.cols == r {
			return 1
		}
		return 0
	}
	if k%m.cols == r-m.rows {
		return 1
	}

	return 0
}

func (m marginals) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// negIdentity is the n×n matrix −I encoding v >= 0 as −v <= 0.
type negIdentity struct {
	n int
}

var _ mat.Matrix = negIdentity{}

func (m negIdentity) Dims() (r, c int) { return m.n, m.n }

func (m negIdentity) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(mat.ErrIndexOutOfRange)
	}
	if i == j {
		return -1
	}

	return 0
}

// T returns m itself: −I is symmetric.
func (m negIdentity) T() mat.Matrix { return m }
