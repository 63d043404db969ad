package flow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/emdist/dijkstra"
	"github.com/katalvlaran/emdist/matrix"
	"github.com/katalvlaran/emdist/transport"
)

// Transport computes a minimum-cost plan moving x onto y under cost.
//
// Input contracts are those of transport.Build (shape, finite non-negative
// values, balanced mass) and fail with the transport sentinels.
//
// Steps:
//  1. Normalize options; validate inputs via transport.Validate.
//  2. Build the residual network: source 0, supplies 1..r, demands
//     r+1..r+c, sink r+c+1.
//  3. While mass remains:
//     a. Check for cancellation.
//     b. Dijkstra from source on reduced costs, stopping at the sink.
//     c. Sink unreachable → ErrInfeasible.
//     d. Raise potentials by min(dist[v], dist[sink]).
//     e. Push the path bottleneck.
//  4. Read the flow off the supply→demand arcs; Cost = cost·flow.
//
// Complexity: see package doc.
func Transport(x, y []float64, cost matrix.Matrix, opts FlowOptions) (*Plan, error) {
	// 1) Options and validation
	opts.normalize()
	if err := transport.Validate(x, y, cost); err != nil {
		return nil, err
	}
	c, err := transport.Flatten(cost)
	if err != nil {
		return nil, err
	}

	rows, cols := len(x), len(y)
	sx, sy := floats.Sum(x), floats.Sum(y)
	eps := opts.Epsilon * math.Max(1, sx)

	// 2) Network
	var (
		source = 0
		sink   = rows + cols + 1
		nw     = newNetwork(rows+cols+2, eps)
		cell   = make([]int, rows*cols)
	)
	for i, xi := range x {
		nw.addArc(source, 1+i, xi, 0)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cell[i*cols+j] = nw.addArc(1+i, 1+rows+j, math.Min(x[i], y[j]), c[i*cols+j])
		}
	}
	for j, yj := range y {
		nw.addArc(1+rows+j, sink, yj, 0)
	}

	limit := opts.MaxAugmentations
	if limit == 0 {
		limit = 4*len(nw.arcs) + 16
	}

	// 3) Successive shortest paths
	remaining := math.Min(sx, sy)
	rounds := 0
	for remaining > eps {
		// 3a) Cancellation
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if rounds >= limit {
			return nil, fmt.Errorf("%w: %d rounds, %g mass left", ErrNotConverged, rounds, remaining)
		}
		rounds++

		// 3b) Cheapest path on reduced costs
		dist, prev, err := dijkstra.Shortest(nw, source, dijkstra.WithReturnPath(), dijkstra.WithTarget(sink))
		if err != nil {
			return nil, fmt.Errorf("flow: shortest path: %w", err)
		}

		// 3c) No path
		dt := dist[sink]
		if math.IsInf(dt, 1) {
			return nil, fmt.Errorf("%w: %g mass left", ErrInfeasible, remaining)
		}

		// 3d) Potentials
		for v, dv := range dist {
			nw.pot[v] += math.Min(dv, dt)
		}

		// 3e) Augment
		path := dijkstra.PathTo(prev, source, sink)
		if len(path) < 2 {
			return nil, fmt.Errorf("%w: no path to sink at distance %g", ErrInfeasible, dt)
		}
		ids := make([]int, 0, len(path)-1)
		bottleneck := remaining
		for k := 1; k < len(path); k++ {
			id := nw.residual(path[k-1], path[k])
			if id < 0 {
				return nil, fmt.Errorf("flow: lost residual arc %d→%d", path[k-1], path[k])
			}
			ids = append(ids, id)
			bottleneck = math.Min(bottleneck, nw.arcs[id].cap)
		}
		for _, id := range ids {
			nw.push(id, bottleneck)
		}
		remaining -= bottleneck
	}

	// 4) Plan
	data := make([]float64, rows*cols)
	for k, id := range cell {
		if f := nw.sent(id); f > eps {
			data[k] = f
		}
	}
	plan, err := matrix.NewFromData(rows, cols, data)
	if err != nil {
		return nil, err
	}

	return &Plan{Flow: plan, Cost: floats.Dot(c, data), Augmentations: rounds}, nil
}
