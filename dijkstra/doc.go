// Package dijkstra implements Dijkstra's shortest-path algorithm on
// index-addressed graphs with non-negative float64 arc weights.
//
// Vertices are the integers 0..Order()-1 and arcs are enumerated through the
// Graph interface, so callers can expose a view computed on the fly (e.g. the
// residual network of a flow problem with reduced costs) without building a
// separate graph value.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor slices.
//   - O(E) worst case for heap entries under lazy decrease-key.
//
// Options:
//
//   - WithReturnPath():        also return the predecessor slice.
//   - WithMaxDistance(d):      do not finalize vertices farther than d.
//   - WithInfEdgeThreshold(t): arcs with weight >= t are impassable.
//   - WithTarget(t):           stop as soon as t is finalized.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph is nil.
//   - ErrVertexNotFound  if the source (or target) is outside 0..Order()-1.
//   - ErrNegativeWeight  if an arc weight is negative or NaN.
//
// Example:
//
//	g := dijkstra.Adjacency{
//		{{To: 1, Weight: 1}, {To: 2, Weight: 5}},
//		{{To: 2, Weight: 2}},
//		nil,
//	}
//	dist, prev, err := dijkstra.Shortest(g, 0, dijkstra.WithReturnPath())
//	// dist = [0 1 3], prev = [-1 0 1]
package dijkstra
