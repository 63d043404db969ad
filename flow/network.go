package flow

import "github.com/katalvlaran/emdist/dijkstra"

// arc is one residual arc; arcs[a.rev] is its partner in the other direction.
type arc struct {
	to   int
	rev  int
	cap  float64
	cost float64
}

// network is a residual network with vertex potentials. It implements
// dijkstra.Graph over arcs with capacity above eps, weighted by reduced cost.
type network struct {
	adj  [][]int
	arcs []arc
	pot  []float64
	eps  float64
}

var _ dijkstra.Graph = (*network)(nil)

func newNetwork(order int, eps float64) *network {
	return &network{
		adj: make([][]int, order),
		pot: make([]float64, order),
		eps: eps,
	}
}

// addArc adds u→v with the given capacity and cost plus its zero-capacity
// reverse arc, and returns the index of the forward arc.
func (nw *network) addArc(u, v int, capacity, cost float64) int {
	id := len(nw.arcs)
	nw.arcs = append(nw.arcs,
		arc{to: v, rev: id + 1, cap: capacity, cost: cost},
		arc{to: u, rev: id, cap: 0, cost: -cost},
	)
	nw.adj[u] = append(nw.adj[u], id)
	nw.adj[v] = append(nw.adj[v], id+1)

	return id
}

// Order implements dijkstra.Graph.
func (nw *network) Order() int { return len(nw.adj) }

// VisitArcs implements dijkstra.Graph. Reduced costs are clamped at zero:
// with valid potentials any negative value is round-off.
func (nw *network) VisitArcs(u int, fn func(v int, w float64)) {
	for _, id := range nw.adj[u] {
		a := &nw.arcs[id]
		if a.cap <= nw.eps {
			continue
		}
		rc := a.cost + nw.pot[u] - nw.pot[a.to]
		if rc < 0 {
			rc = 0
		}
		fn(a.to, rc)
	}
}

// residual returns the open arc u→v, or -1. Each ordered pair carries at
// most one arc in a transportation network.
func (nw *network) residual(u, v int) int {
	for _, id := range nw.adj[u] {
		if nw.arcs[id].to == v && nw.arcs[id].cap > nw.eps {
			return id
		}
	}

	return -1
}

// push moves amount along arc id.
func (nw *network) push(id int, amount float64) {
	nw.arcs[id].cap -= amount
	nw.arcs[nw.arcs[id].rev].cap += amount
}

// sent is the flow carried by forward arc id.
func (nw *network) sent(id int) float64 {
	return nw.arcs[nw.arcs[id].rev].cap
}
