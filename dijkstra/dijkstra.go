package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Shortest computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the distance from source, +Inf if v was not reached.
//   - prev: if WithReturnPath, prev[v] is v's predecessor on a shortest
//     path (NoVertex for the source and unreached vertices); nil otherwise.
//   - err:  non-nil if inputs are invalid or a negative weight is found.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source (and target, if set) within 0..Order()-1 (ErrVertexNotFound).
//  3. No arc may have a negative or NaN weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Shortest(g Graph, source int, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.Order()
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: source %d, order %d", ErrVertexNotFound, source, n)
	}
	if cfg.Target != NoVertex && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, nil, fmt.Errorf("%w: target %d, order %d", ErrVertexNotFound, cfg.Target, n)
	}

	// 3) Pre-scan all arcs; fail fast on a negative weight.
	if err := scanWeights(g); err != nil {
		return nil, nil, err
	}

	// 4) Prepare state. prev is allocated only when requested.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 5) Run.
	r.init(source)
	r.process()

	return r.dist, r.prev, nil
}

// scanWeights rejects negative and NaN weights before any distance is set.
func scanWeights(g Graph) error {
	var bad error
	for u := 0; u < g.Order() && bad == nil; u++ {
		g.VisitArcs(u, func(v int, w float64) {
			if bad == nil && (w < 0 || math.IsNaN(w)) {
				bad = fmt.Errorf("%w: arc %d→%d weight=%g", ErrNegativeWeight, u, v, w)
			}
		})
	}

	return bad
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       Graph
	options Options
	dist    []float64 // current best distance from source
	prev    []int     // predecessor on the shortest path; nil unless ReturnPath
	visited []bool    // distance finalized
	pq      nodePQ    // lazy min-heap
}

// init sets every distance to +Inf and pushes the source at distance 0.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = NoVertex
		}
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly finalizes the closest unvisited vertex and relaxes its
// arcs. It stops when the heap empties, the minimum exceeds MaxDistance, or
// the target is finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry from lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		if u == r.options.Target {
			break
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	r.g.VisitArcs(u, func(v int, w float64) {
		// Impassable arc.
		if w >= r.options.InfEdgeThreshold {
			return
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			return
		}
		// Strictly better only; equal distances keep the first predecessor.
		if nd >= r.dist[v] {
			return
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	})
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, with stale entries
// skipped on pop (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the vertex sequence source→…→target from prev.
// Returns nil if target was not reached.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	var path []int
	for v := target; v != NoVertex; v = prev[v] {
		path = append(path, v)
		if v == source {
			break
		}
		if len(path) > len(prev) {
			return nil
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
