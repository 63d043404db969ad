package linprog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIndependentRows_Duplicates(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{
		1, 1,
		1, 1,
		2, 2,
	})
	keep, err := independentRows(a, []float64{1, 1, 2}, DefaultRedundancyTolerance)
	require.NoError(t, err)
	require.Equal(t, []int{0}, keep)
}

// TestIndependentRows_TransportMarginals: the 2x2 marginal system has rank 3;
// the last column row is the one dropped.
func TestIndependentRows_TransportMarginals(t *testing.T) {
	a := mat.NewDense(4, 4, []float64{
		1, 1, 0, 0, // row 0 of x
		0, 0, 1, 1, // row 1 of x
		1, 0, 1, 0, // column 0 of y
		0, 1, 0, 1, // column 1 of y
	})
	keep, err := independentRows(a, []float64{0.5, 0.5, 0.25, 0.75}, DefaultRedundancyTolerance)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, keep)
}

func TestIndependentRows_ToleratesTinyImbalance(t *testing.T) {
	a := mat.NewDense(4, 4, []float64{
		1, 1, 0, 0,
		0, 0, 1, 1,
		1, 0, 1, 0,
		0, 1, 0, 1,
	})
	_, err := independentRows(a, []float64{0.5, 0.5, 0.25, 0.75 + 1e-10}, DefaultRedundancyTolerance)
	require.NoError(t, err)

	_, err = independentRows(a, []float64{0.5, 0.5, 0.25, 0.8}, DefaultRedundancyTolerance)
	require.ErrorIs(t, err, errInconsistentRow)
}

func TestSelectRows(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	out, b := selectRows(a, []float64{7, 8, 9}, []int{0, 2})
	r, c := out.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, []float64{5, 6}, out.RawRowView(1))
	require.Equal(t, []float64{7, 9}, b)
}
