// Package dijkstra_test contains unit tests for Shortest: validation,
// distances and paths, MaxDistance, InfEdgeThreshold and early stop.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emdist/dijkstra"
)

// triangle: 0→1 (1), 1→2 (2), 0→2 (5).
func triangle() dijkstra.Adjacency {
	return dijkstra.Adjacency{
		{{To: 1, Weight: 1}, {To: 2, Weight: 5}},
		{{To: 2, Weight: 2}},
		nil,
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortest_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Shortest(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortest_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Shortest(triangle(), 3)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Shortest(triangle(), -1)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Shortest(triangle(), 0, dijkstra.WithTarget(7))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestShortest_NegativeWeight(t *testing.T) {
	g := dijkstra.Adjacency{{{To: 1, Weight: -1}}, nil}
	_, _, err := dijkstra.Shortest(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	g = dijkstra.Adjacency{{{To: 1, Weight: math.NaN()}}, nil}
	_, _, err = dijkstra.Shortest(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(math.NaN()) })
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestShortest_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Shortest(triangle(), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, dist)
	assert.Nil(t, prev) // ReturnPath not requested
}

func TestShortest_ReturnPath(t *testing.T) {
	dist, prev, err := dijkstra.Shortest(triangle(), 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, dist)
	assert.Equal(t, []int{dijkstra.NoVertex, 0, 1}, prev)
	assert.Equal(t, []int{0, 1, 2}, dijkstra.PathTo(prev, 0, 2))
	assert.Equal(t, []int{0}, dijkstra.PathTo(prev, 0, 0))
}

func TestShortest_Unreachable(t *testing.T) {
	g := dijkstra.Adjacency{{{To: 1, Weight: 1}}, nil, nil}
	dist, prev, err := dijkstra.Shortest(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[2], 1))
	assert.Equal(t, dijkstra.NoVertex, prev[2])
	assert.Nil(t, dijkstra.PathTo(prev, 0, 2))
	assert.Nil(t, dijkstra.PathTo(prev, 0, 9))
}

func TestShortest_ZeroWeights(t *testing.T) {
	g := dijkstra.Adjacency{{{To: 1, Weight: 0}}, {{To: 2, Weight: 0}}, nil}
	dist, _, err := dijkstra.Shortest(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, dist)
}

func TestShortest_SelfLoopAndParallel(t *testing.T) {
	g := dijkstra.Adjacency{
		{{To: 0, Weight: 1}, {To: 1, Weight: 4}, {To: 1, Weight: 2}},
		nil,
	}
	dist, _, err := dijkstra.Shortest(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, dist)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestShortest_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Shortest(triangle(), 0, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1)) // 3 > 2
}

func TestShortest_InfEdgeThreshold(t *testing.T) {
	dist, _, err := dijkstra.Shortest(triangle(), 0, dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1)) // both routes use an arc of weight >= 2
}

func TestShortest_TargetStopsEarly(t *testing.T) {
	// 0→1 (1), 0→2 (10), 1→3 (1). Stopping at 1 leaves 2 tentative and 3 unfinalized.
	g := dijkstra.Adjacency{
		{{To: 1, Weight: 1}, {To: 2, Weight: 10}},
		{{To: 3, Weight: 1}},
		nil,
		nil,
	}
	dist, _, err := dijkstra.Shortest(g, 0, dijkstra.WithTarget(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist[1])
	assert.Equal(t, 10.0, dist[2]) // tentative, >= dist[target]
	assert.True(t, math.IsInf(dist[3], 1))
}

func TestShortest_MatchesBruteForce(t *testing.T) {
	// Complete digraph on 5 vertices with w(u,v) = |u−v|²; shortest paths
	// take unit steps, so dist[v] = v from source 0.
	n := 5
	g := make(dijkstra.Adjacency, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				d := float64(u - v)
				g[u] = append(g[u], dijkstra.Arc{To: v, Weight: d * d})
			}
		}
	}
	dist, _, err := dijkstra.Shortest(g, 0)
	require.NoError(t, err)
	for v := 0; v < n; v++ {
		assert.Equal(t, float64(v), dist[v])
	}
}
