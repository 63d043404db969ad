package emd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/emdist/emd"
	"github.com/katalvlaran/emdist/matrix"
	"github.com/katalvlaran/emdist/minkowski"
)

// seedDet keeps every generated instance identical across runs.
const seedDet = 20240611

// randWeights returns n positive weights summing to 1.
func randWeights(rng *rand.Rand, n int) []float64 {
	w := make([]float64, n)
	var s float64
	for i := range w {
		w[i] = 0.1 + rng.Float64()
		s += w[i]
	}
	for i := range w {
		w[i] /= s
	}
	return w
}

// randPoints returns n points in [0,10)^dim.
func randPoints(rng *rand.Rand, n, dim int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, dim)
		for k := range pts[i] {
			pts[i][k] = 10 * rng.Float64()
		}
	}
	return pts
}

// symmetricCost returns the Euclidean cost among n random points (zero diagonal).
func symmetricCost(t *testing.T, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	pts := randPoints(rng, n, 2)
	cost, err := minkowski.CostMatrix(pts, pts, minkowski.Euclidean)
	require.NoError(t, err)
	return cost
}

func TestProperty_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for n := 1; n <= 5; n++ {
		w := randWeights(rng, n)
		res, err := emd.Distance(w, w, symmetricCost(t, rng, n))
		require.NoError(t, err)
		assert.InDelta(t, 0.0, res.Distance, 1e-9, "n=%d", n)
		requireMarginals(t, res.Flow, w, w)
	}
}

func TestProperty_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	for trial := 0; trial < 5; trial++ {
		n := 2 + trial%3
		cost := symmetricCost(t, rng, n)
		x, y := randWeights(rng, n), randWeights(rng, n)

		ct, err := matrix.Transpose(cost)
		require.NoError(t, err)

		fwd, err := emd.Distance(x, y, cost)
		require.NoError(t, err)
		bwd, err := emd.Distance(y, x, ct)
		require.NoError(t, err)
		assert.InDelta(t, fwd.Distance, bwd.Distance, 1e-9, "trial %d", trial)
	}
}

// TestProperty_NonNegativeAndConserving runs rectangular instances and checks
// distance >= 0, flow >= 0 and both marginals.
func TestProperty_NonNegativeAndConserving(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 2))
	for trial := 0; trial < 6; trial++ {
		r, c := 1+trial%4, 1+(trial*3)%5
		x, y := randWeights(rng, r), randWeights(rng, c)
		px, py := randPoints(rng, r, 3), randPoints(rng, c, 3)
		p := 1 + float64(trial%3)

		res, err := emd.FromPoints(x, px, y, py, p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Distance, 0.0)
		require.NoError(t, matrix.ValidateNonNegative(res.Flow))
		requireMarginals(t, res.Flow, x, y)

		// The distance is the cost of the returned plan.
		cost, err := minkowski.CostMatrix(px, py, p)
		require.NoError(t, err)
		assert.InDelta(t, floats.Dot(cost.Data(), res.Flow.Data()), res.Distance, 1e-9, "trial %d", trial)
	}
}

func TestProperty_Scaling(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 3))
	const k = 3.5
	for trial := 0; trial < 4; trial++ {
		n := 2 + trial
		cost := symmetricCost(t, rng, n)
		x, y := randWeights(rng, n), randWeights(rng, n)

		scaled, err := matrix.Scale(cost, k)
		require.NoError(t, err)

		base, err := emd.Distance(x, y, cost)
		require.NoError(t, err)
		big, err := emd.Distance(x, y, scaled)
		require.NoError(t, err)
		assert.InDelta(t, k*base.Distance, big.Distance, 1e-8, "trial %d", trial)
	}
}

// TestProperty_Idempotent: identical inputs give identical distances.
func TestProperty_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 4))
	cost := symmetricCost(t, rng, 4)
	x, y := randWeights(rng, 4), randWeights(rng, 4)

	first, err := emd.Distance(x, y, cost)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := emd.Distance(x, y, cost)
		require.NoError(t, err)
		assert.Equal(t, first.Distance, again.Distance)
	}
}

// TestProperty_SinglePointReduces: with one source the distance is Σ y[j]·cost[0][j].
func TestProperty_SinglePointReduces(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 5))
	y := randWeights(rng, 5)
	row := []float64{3, 1, 4, 1, 5}
	cost, err := matrix.NewFromRows([][]float64{row})
	require.NoError(t, err)

	var want float64
	for j := range y {
		want += y[j] * row[j]
	}

	res, err := emd.Distance([]float64{1}, y, cost)
	require.NoError(t, err)
	assert.InDelta(t, want, res.Distance, 1e-9)
	requireMarginals(t, res.Flow, []float64{1}, y)
}

// TestConcurrentCalls runs independent problems in parallel on the shared default solver.
func TestConcurrentCalls(t *testing.T) {
	cost := lineCost(t, 4)
	x := []float64{1, 0, 0, 0}
	ys := [][]float64{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	}
	want := []float64{3, 2, 1, 0}

	got := make([]float64, 4*len(ys))
	var eg errgroup.Group
	for i := range got {
		i := i
		eg.Go(func() error {
			res, err := emd.Distance(x, ys[i%len(ys)], cost)
			if err != nil {
				return err
			}
			got[i] = res.Distance
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	for i, d := range got {
		assert.InDelta(t, want[i%len(want)], d, 1e-9)
	}
	assert.False(t, math.IsNaN(got[0]))
}

// TestProperty_MethodsAgree compares the LP and network backends on random
// point clouds: same distance, both plans conserve mass.
func TestProperty_MethodsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for trial := 0; trial < 15; trial++ {
		r, c := 1+rng.Intn(5), 1+rng.Intn(5)
		x, y := randWeights(rng, r), randWeights(rng, c)
		px, py := randPoints(rng, r, 3), randPoints(rng, c, 3)

		lp, err := emd.FromPointsEuclidean(x, px, y, py)
		require.NoError(t, err)
		net, err := emd.FromPointsEuclidean(x, px, y, py, emd.WithMethod(emd.MethodNetwork))
		require.NoError(t, err)

		assert.InDelta(t, lp.Distance, net.Distance, 1e-9, "trial %d (%dx%d)", trial, r, c)
		requireMarginals(t, net.Flow, x, y)
	}
}
