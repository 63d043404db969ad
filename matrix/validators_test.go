package matrix_test

import (
	"testing"

	"github.com/katalvlaran/emdist/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateShape(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, matrix.ValidateShape(m, 2, 3))
	require.ErrorIs(t, matrix.ValidateShape(m, 3, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 2, 3), matrix.ErrNilMatrix)
}

func TestValidateBinarySameShape(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1}, {2}})

	require.NoError(t, matrix.ValidateBinarySameShape(a, a))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, b), matrix.ErrNilMatrix)
}

func TestValidateNonNegative(t *testing.T) {
	require.NoError(t, matrix.ValidateNonNegative(mustRows(t, [][]float64{{0, 1}, {2, 0}})))
	require.ErrorIs(t,
		matrix.ValidateNonNegative(mustRows(t, [][]float64{{0, -1}})),
		matrix.ErrNegative)
	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}
