package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMarginals_TransposeAndBounds(t *testing.T) {
	m := marginals{rows: 2, cols: 2}

	tr := m.T()
	r, c := tr.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	require.True(t, mat.Equal(tr, mat.DenseCopyOf(m).T()))

	require.Panics(t, func() { m.At(4, 0) })
	require.Panics(t, func() { m.At(0, 4) })
	require.Panics(t, func() { m.At(-1, 0) })
}

func TestNegIdentity(t *testing.T) {
	m := negIdentity{n: 3}
	require.True(t, mat.Equal(m, m.T()))
	require.Equal(t, -1.0, m.At(2, 2))
	require.Equal(t, 0.0, m.At(0, 2))
	require.Panics(t, func() { m.At(3, 3) })
}
