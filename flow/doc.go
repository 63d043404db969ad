// Package flow solves the transportation problem as a min-cost flow.
//
// Transport moves supplies x onto demands y over the bipartite network
//
//	source ─(x[i], 0)→ supply i ─(min(x[i],y[j]), cost[i][j])→ demand j ─(y[j], 0)→ sink
//
// with successive shortest paths: each round finds a cheapest augmenting
// path in the residual network (package dijkstra on reduced costs) and
// pushes as much mass along it as the path allows.
//
// It is an independent backend for the same program transport.Build states
// as an LP, and is typically much faster than a dense simplex.
//
//   - Method: successive shortest paths with Johnson potentials; every
//     residual arc keeps a non-negative reduced cost, so Dijkstra applies.
//   - Time:   O(A · (V + E) log V) where A is the number of augmentations
//     (each one saturates an arc or exhausts the remaining mass).
//   - Memory: O(r·c) for the residual network.
//
// # API
//
//	opts := flow.DefaultOptions()
//	opts.Ctx = ctx // optional cancellation
//	plan, err := flow.Transport(x, y, cost, opts)
//
// # Errors
//
//	transport.ErrShapeMismatch / ErrInvalidValue / ErrMassImbalance - input contracts.
//	ErrInfeasible     - the sink became unreachable with mass left to route.
//	ErrNotConverged   - MaxAugmentations reached.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package flow
